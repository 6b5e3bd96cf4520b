// ABOUTME: Entry point for the wavgen tool
// ABOUTME: Synthesizes or decodes audio, transforms it and exports WAV
package main

import (
	"flag"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brieaudio/pcmkit/pkg/audio"
	"github.com/brieaudio/pcmkit/pkg/audio/decode"
	"github.com/brieaudio/pcmkit/pkg/audio/playback"
	"github.com/brieaudio/pcmkit/pkg/audio/resample"
	"github.com/brieaudio/pcmkit/pkg/audio/wav"
)

var (
	input    = flag.String("in", "", "MP3 or FLAC file to convert (default: synthesize a tone)")
	output   = flag.String("o", "out.wav", "Output WAV path")
	rate     = flag.Uint("rate", 44100, "Sample rate for the synthesized tone")
	channels = flag.Uint("channels", 1, "Channel count for the synthesized tone")
	freq     = flag.Float64("freq", 440, "Tone frequency in Hz")
	length   = flag.Duration("dur", 2*time.Second, "Tone length")
	fade     = flag.Duration("fade", 0, "Fade-in applied to the start of the buffer")
	outRate  = flag.Uint("resample", 0, "Resample to this rate before export")
	play     = flag.Bool("play", false, "Play the buffer after export")
)

func main() {
	flag.Parse()

	var buf *audio.Buffer
	var err error

	if *input != "" {
		buf, err = readInput(*input)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", *input, err)
		}
		log.Printf("Decoded %s: %dHz, %d channels, %d samples",
			*input, buf.Format.SampleRate, buf.Format.Channels, buf.Len())
	} else {
		buf = synthesize(audio.Format{
			Channels:   uint16(*channels),
			SampleRate: uint32(*rate),
		}, *freq, *length)
		log.Printf("Synthesized %v of %.0fHz tone", *length, *freq)
	}

	if *fade > 0 {
		buf = fadeIn(buf, *fade)
	}

	if *outRate > 0 && uint32(*outRate) != buf.Format.SampleRate {
		buf = resample.Buffer(buf, uint32(*outRate))
		log.Printf("Resampled to %dHz", buf.Format.SampleRate)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	if err := wav.NewFile(buf).Export(f); err != nil {
		f.Close()
		log.Fatalf("Export failed: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", *output, err)
	}
	log.Printf("Wrote %s", *output)

	if *play {
		if err := playback.Play(buf).Join(); err != nil {
			log.Fatalf("Playback failed: %v", err)
		}
		log.Printf("Playback finished")
	}
}

// readInput decodes an MP3 or FLAC file into a buffer.
func readInput(path string) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var dec decode.Decoder
	switch strings.ToLower(filepath.Ext(path)) {
	case ".flac":
		dec = decode.NewFLAC(f)
	default:
		dec = decode.NewMP3(f)
	}
	defer dec.Close()

	return dec.Decode()
}

// synthesize fills a buffer with a sine tone at the given frequency.
func synthesize(format audio.Format, freq float64, length time.Duration) *audio.Buffer {
	buf := audio.New(format)
	frames := int(length.Seconds() * float64(format.SampleRate))
	for i := 0; i < frames; i++ {
		phase := 2 * math.Pi * freq * float64(i) / float64(format.SampleRate)
		s := audio.SampleFromFloat32(float32(math.Sin(phase)))
		for c := 0; c < int(format.Channels); c++ {
			buf.Append(s)
		}
	}
	return buf
}

// fadeIn ramps the first stretch of the buffer from silence to full
// volume. Map visits flat positions in ascending order, so the closure
// can track its position.
func fadeIn(buf *audio.Buffer, length time.Duration) *audio.Buffer {
	flat := int(length.Seconds()*float64(buf.Format.SampleRate)) * int(buf.Format.Channels)
	pos := 0
	return buf.Map(audio.Range{Start: 0, End: flat}, func(s int16) int16 {
		gain := float64(pos) / float64(flat)
		pos++
		return int16(float64(s) * gain)
	})
}
