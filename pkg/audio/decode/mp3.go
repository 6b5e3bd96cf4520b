// ABOUTME: MP3 source
// ABOUTME: Decodes an MP3 stream into a buffer using go-mp3
package decode

import (
	"fmt"
	"io"

	"github.com/brieaudio/pcmkit/pkg/audio"
	"github.com/hajimehoshi/go-mp3"
)

// MP3Decoder decodes an MP3 stream
type MP3Decoder struct {
	r io.Reader
}

// NewMP3 creates a new MP3 decoder over r
func NewMP3(r io.Reader) Decoder {
	return &MP3Decoder{r: r}
}

// Decode reads the full MP3 stream into a sample buffer
func (d *MP3Decoder) Decode() (*audio.Buffer, error) {
	return ReadMP3(d.r)
}

// Close releases decoder resources
func (d *MP3Decoder) Close() error {
	return nil
}

// ReadMP3 decodes an entire MP3 stream into a buffer. go-mp3 always
// produces 2-channel 16-bit output at the stream's sample rate.
func ReadMP3(r io.Reader) (*audio.Buffer, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}

	buf := audio.New(audio.Format{
		Channels:   2,
		SampleRate: uint32(decoder.SampleRate()),
	})

	chunk := make([]byte, 8192)
	for {
		n, err := decoder.Read(chunk)
		if n > 0 {
			buf.Append(samplesFromBytes(chunk[:n])...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("mp3 decode error: %w", err)
		}
	}

	return buf, nil
}
