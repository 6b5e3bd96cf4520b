// ABOUTME: Audio fundamentals package providing core buffer types
// ABOUTME: Defines Format, Buffer and the range transform primitive
// Package audio provides the core sample buffer types for 16-bit PCM audio.
//
// This package defines the types used throughout the pcmkit library:
//   - Format: The fixed (channel count, sample rate) pair governing a buffer
//   - Buffer: A flat, interleaved sequence of signed 16-bit samples
//   - Range/SampleFunc: The range-scoped per-sample transform primitive
//
// Samples are interleaved per channel: logical sample index i on channel c
// lives at flat offset i*Channels + c. Buffers are single-owner values;
// mutation happens through bounds-checked writes or the Map transform,
// which returns a new buffer and leaves the original untouched.
//
// Example:
//
//	buf := audio.New(audio.Format{Channels: 2, SampleRate: 44100})
//	buf.Append(samples...)
//	buf.SetSample(10, 0, 1200)
//
//	// Halve the first second of samples
//	quiet := buf.Map(audio.Range{Start: 0, End: 88200}, func(s int16) int16 {
//		return s / 2
//	})
package audio
