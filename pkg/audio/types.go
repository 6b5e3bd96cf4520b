// ABOUTME: Core audio type definitions
// ABOUTME: Defines Format, Buffer and sample conversion functions
package audio

import "time"

// Format describes a buffer's fixed channel layout and sample rate.
// Both values hold for the lifetime of a buffer; a different format
// requires constructing a new buffer.
type Format struct {
	Channels   uint16
	SampleRate uint32
}

// Buffer holds interleaved signed 16-bit PCM samples. Logical sample
// index i on channel c maps to flat offset i*Channels + c. The flat
// length must be a multiple of Channels before serialization or
// playback; Append does not enforce this.
type Buffer struct {
	Format  Format
	Samples []int16
}

// New creates an empty buffer bound to format.
func New(format Format) *Buffer {
	return &Buffer{Format: format}
}

// SetSample overwrites the sample at logical index and channel.
// Returns false without modifying the buffer when the flat offset falls
// outside the current length. The buffer never grows through this path.
func (b *Buffer) SetSample(index, channel int, sample int16) bool {
	offset := index*int(b.Format.Channels) + channel
	if offset < 0 || offset >= len(b.Samples) {
		return false
	}
	b.Samples[offset] = sample
	return true
}

// Sample reads the sample at logical index and channel. The second
// return value reports whether the flat offset was within bounds.
func (b *Buffer) Sample(index, channel int) (int16, bool) {
	offset := index*int(b.Format.Channels) + channel
	if offset < 0 || offset >= len(b.Samples) {
		return 0, false
	}
	return b.Samples[offset], true
}

// Append adds samples to the end of the buffer. No validation is
// applied; callers keep the flat length a multiple of Channels.
func (b *Buffer) Append(samples ...int16) {
	b.Samples = append(b.Samples, samples...)
}

// Len returns the flat sample count across all channels.
func (b *Buffer) Len() int {
	return len(b.Samples)
}

// Duration returns the playing time of the buffer's complete frames.
func (b *Buffer) Duration() time.Duration {
	if b.Format.Channels == 0 || b.Format.SampleRate == 0 {
		return 0
	}
	frames := len(b.Samples) / int(b.Format.Channels)
	return time.Duration(frames) * time.Second / time.Duration(b.Format.SampleRate)
}

// SampleToFloat32 converts an int16 sample to the normalized [-1, 1]
// float range used by playback.
func SampleToFloat32(sample int16) float32 {
	return float32(sample) / 32767
}

// SampleFromFloat32 converts a normalized float sample to int16,
// clamping values outside [-1, 1].
func SampleFromFloat32(sample float32) int16 {
	if sample > 1 {
		sample = 1
	}
	if sample < -1 {
		sample = -1
	}
	return int16(sample * 32767)
}
