// ABOUTME: Raw PCM source
// ABOUTME: Converts 16-bit little-endian PCM bytes into a buffer
package decode

import (
	"encoding/binary"

	"github.com/brieaudio/pcmkit/pkg/audio"
)

// PCMDecoder decodes raw 16-bit little-endian PCM bytes
type PCMDecoder struct {
	data   []byte
	format audio.Format
}

// NewPCM creates a new PCM decoder over data
func NewPCM(data []byte, format audio.Format) Decoder {
	return &PCMDecoder{data: data, format: format}
}

// Decode converts the PCM bytes to a sample buffer
func (d *PCMDecoder) Decode() (*audio.Buffer, error) {
	return ReadPCM(d.data, d.format), nil
}

// Close releases decoder resources
func (d *PCMDecoder) Close() error {
	return nil
}

// ReadPCM builds a buffer from raw 16-bit little-endian PCM bytes.
// The caller supplies the format; a trailing odd byte is dropped.
func ReadPCM(data []byte, format audio.Format) *audio.Buffer {
	buf := audio.New(format)
	buf.Append(samplesFromBytes(data)...)
	return buf
}

// samplesFromBytes decodes little-endian int16 samples.
func samplesFromBytes(data []byte) []int16 {
	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return samples
}
