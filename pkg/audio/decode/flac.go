// ABOUTME: FLAC source
// ABOUTME: Decodes a FLAC stream into a buffer using mewkiz/flac
package decode

import (
	"fmt"
	"io"

	"github.com/brieaudio/pcmkit/pkg/audio"
	"github.com/mewkiz/flac"
)

// FLACDecoder decodes a FLAC stream
type FLACDecoder struct {
	r io.Reader
}

// NewFLAC creates a new FLAC decoder over r
func NewFLAC(r io.Reader) Decoder {
	return &FLACDecoder{r: r}
}

// Decode reads the full FLAC stream into a sample buffer
func (d *FLACDecoder) Decode() (*audio.Buffer, error) {
	return ReadFLAC(d.r)
}

// Close releases decoder resources
func (d *FLACDecoder) Close() error {
	return nil
}

// ReadFLAC decodes an entire FLAC stream into a buffer. Channel
// subframes are interleaved; samples wider than 16 bits are shifted
// down to the 16-bit range.
func ReadFLAC(r io.Reader) (*audio.Buffer, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create flac decoder: %w", err)
	}
	defer stream.Close()

	info := stream.Info
	buf := audio.New(audio.Format{
		Channels:   uint16(info.NChannels),
		SampleRate: info.SampleRate,
	})
	shift := int(info.BitsPerSample) - 16

	for {
		f, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("flac decode error: %w", err)
		}

		frames := len(f.Subframes[0].Samples)
		samples := make([]int16, 0, frames*len(f.Subframes))
		for i := 0; i < frames; i++ {
			for _, sub := range f.Subframes {
				s := sub.Samples[i]
				if shift > 0 {
					s >>= shift
				} else if shift < 0 {
					s <<= -shift
				}
				samples = append(samples, int16(s))
			}
		}
		buf.Append(samples...)
	}

	return buf, nil
}
