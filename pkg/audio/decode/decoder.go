// ABOUTME: Decoder interface definition
// ABOUTME: Common interface for buffer-producing audio sources
package decode

import "github.com/brieaudio/pcmkit/pkg/audio"

// Decoder decodes an audio source wholesale into a sample buffer
type Decoder interface {
	// Decode reads the full source and returns the decoded buffer
	Decode() (*audio.Buffer, error)

	// Close releases decoder resources
	Close() error
}
