// ABOUTME: WAV header layout and field computation
// ABOUTME: Derives all header size fields from sample count and format
package wav

import "github.com/brieaudio/pcmkit/pkg/audio"

const (
	// HeaderSize is the length in bytes of the canonical PCM WAV header.
	HeaderSize = 44

	// BytesPerSample is fixed: the container carries 16-bit PCM only.
	BytesPerSample = 2

	formatChunkSize = 16
	formatPCM       = 1
)

var (
	riffID = [4]byte{'R', 'I', 'F', 'F'}
	waveID = [4]byte{'W', 'A', 'V', 'E'}
	fmtID  = [4]byte{'f', 'm', 't', ' '}
	dataID = [4]byte{'d', 'a', 't', 'a'}
)

// Header is the 44-byte WAV header. Field order matches the wire
// layout exactly; all multi-byte fields are little-endian.
type Header struct {
	RiffID        [4]byte
	FileSize      uint32 // total bytes following this field
	WaveID        [4]byte
	FmtID         [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32 // SampleRate * BytesPerSample * Channels
	BlockAlign    uint16 // BytesPerSample * Channels
	BitsPerSample uint16
	DataID        [4]byte
	DataSize      uint32
}

// newHeader computes a header for a record of totalSize bytes
// (header plus payload). A totalSize below HeaderSize is treated as a
// header-only record; DataSize never wraps.
func newHeader(totalSize uint32, format audio.Format) Header {
	if totalSize < HeaderSize {
		totalSize = HeaderSize
	}
	return Header{
		RiffID:        riffID,
		FileSize:      totalSize - 8,
		WaveID:        waveID,
		FmtID:         fmtID,
		FmtSize:       formatChunkSize,
		AudioFormat:   formatPCM,
		Channels:      format.Channels,
		SampleRate:    format.SampleRate,
		ByteRate:      format.SampleRate * BytesPerSample * uint32(format.Channels),
		BlockAlign:    BytesPerSample * format.Channels,
		BitsPerSample: BytesPerSample * 8,
		DataID:        dataID,
		DataSize:      totalSize - HeaderSize,
	}
}
