// ABOUTME: Linear resampler for converting buffer sample rates
// ABOUTME: Builds a new buffer at the target rate via linear interpolation
// Package resample converts sample buffers between sample rates. The
// format descriptor is fixed for a buffer's lifetime, so resampling
// constructs a new buffer bound to the target rate.
package resample

import "github.com/brieaudio/pcmkit/pkg/audio"

// Buffer returns a new buffer holding buf's audio resampled to rate
// using per-channel linear interpolation. The channel count is
// preserved and the source buffer is not modified. A target rate equal
// to the source rate yields a plain copy.
func Buffer(buf *audio.Buffer, rate uint32) *audio.Buffer {
	channels := int(buf.Format.Channels)
	out := audio.New(audio.Format{Channels: buf.Format.Channels, SampleRate: rate})

	if channels == 0 || rate == 0 || buf.Format.SampleRate == 0 {
		return out
	}
	if rate == buf.Format.SampleRate {
		out.Append(buf.Samples...)
		return out
	}

	inFrames := len(buf.Samples) / channels
	if inFrames == 0 {
		return out
	}

	ratio := float64(buf.Format.SampleRate) / float64(rate)
	outFrames := int(float64(inFrames) / ratio)
	samples := make([]int16, 0, outFrames*channels)

	for i := 0; i < outFrames; i++ {
		pos := float64(i) * ratio
		idx := int(pos)
		frac := pos - float64(idx)

		next := idx + 1
		if next >= inFrames {
			next = inFrames - 1
		}

		for ch := 0; ch < channels; ch++ {
			s1 := float64(buf.Samples[idx*channels+ch])
			s2 := float64(buf.Samples[next*channels+ch])
			samples = append(samples, int16(s1*(1-frac)+s2*frac))
		}
	}

	out.Append(samples...)
	return out
}
