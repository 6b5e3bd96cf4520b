// ABOUTME: Fire-and-join audio playback using the oto library
// ABOUTME: Spawns a goroutine that streams a buffer copy to the output device
// Package playback plays sample buffers through the default output
// device. Play copies the buffer's samples into the playback unit and
// returns a Handle; Join is the only synchronization point. There is
// no cancellation or progress reporting.
package playback

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/brieaudio/pcmkit/pkg/audio"
	"github.com/ebitengine/oto/v3"
)

// Handle represents an in-flight playback unit.
type Handle struct {
	done chan struct{}
	err  error
}

// Join blocks until the playback unit finishes and returns its
// outcome. A device acquisition or streaming failure terminates the
// unit and surfaces here; nothing is retried.
func (h *Handle) Join() error {
	<-h.done
	return h.err
}

// Play starts playing buf on the default output device. The unit owns
// a normalized float copy of the samples and the derived duration; the
// caller's buffer is not referenced after Play returns.
func Play(buf *audio.Buffer) *Handle {
	samples := normalize(buf.Samples)
	format := buf.Format
	duration := buf.Duration()

	h := &Handle{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		h.err = stream(format, samples, duration)
	}()
	return h
}

// stream opens the output device, plays the samples and sleeps out the
// derived duration before releasing the player.
func stream(format audio.Format, samples []float32, duration time.Duration) error {
	op := &oto.NewContextOptions{
		SampleRate:   int(format.SampleRate),
		ChannelCount: int(format.Channels),
		Format:       oto.FormatFloat32LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	player := ctx.NewPlayer(bytes.NewReader(floatBytes(samples)))
	player.Play()

	log.Printf("Playback started: %dHz, %d channels, %v",
		format.SampleRate, format.Channels, duration)

	time.Sleep(duration)

	if err := player.Close(); err != nil {
		return fmt.Errorf("failed to close player: %w", err)
	}
	return nil
}

// normalize converts int16 samples to the [-1, 1] float range.
func normalize(samples []int16) []float32 {
	out := make([]float32, len(samples))
	for i, s := range samples {
		out[i] = audio.SampleToFloat32(s)
	}
	return out
}

// floatBytes packs float32 samples little-endian for the device.
func floatBytes(samples []float32) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(s))
	}
	return out
}
