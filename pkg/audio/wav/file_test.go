// ABOUTME: Tests for WAV record construction and export
// ABOUTME: Verifies header math, byte-exact output and the error taxonomy
package wav

import (
	"bytes"
	"errors"
	"testing"

	"github.com/brieaudio/pcmkit/pkg/audio"
)

func TestHeaderFields(t *testing.T) {
	tests := []struct {
		name       string
		format     audio.Format
		samples    int
		dataSize   uint32
		byteRate   uint32
		blockAlign uint16
	}{
		{"mono 8k", audio.Format{Channels: 1, SampleRate: 8000}, 5, 10, 16000, 2},
		{"stereo 44.1k", audio.Format{Channels: 2, SampleRate: 44100}, 1000, 2000, 176400, 4},
		{"empty", audio.Format{Channels: 1, SampleRate: 8000}, 0, 0, 16000, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := audio.New(tt.format)
			buf.Append(make([]int16, tt.samples)...)
			h := NewFile(buf).Header

			if h.DataSize != tt.dataSize {
				t.Errorf("DataSize: expected %d, got %d", tt.dataSize, h.DataSize)
			}
			if h.ByteRate != tt.byteRate {
				t.Errorf("ByteRate: expected %d, got %d", tt.byteRate, h.ByteRate)
			}
			if h.BlockAlign != tt.blockAlign {
				t.Errorf("BlockAlign: expected %d, got %d", tt.blockAlign, h.BlockAlign)
			}
			if h.BitsPerSample != 16 {
				t.Errorf("BitsPerSample: expected 16, got %d", h.BitsPerSample)
			}
			// file size excludes the 8-byte RIFF prefix
			if want := uint32(HeaderSize+tt.samples*2) - 8; h.FileSize != want {
				t.Errorf("FileSize: expected %d, got %d", want, h.FileSize)
			}
		})
	}
}

func TestNewHeaderClampsShortRecords(t *testing.T) {
	h := newHeader(10, audio.Format{Channels: 1, SampleRate: 8000})
	if h.DataSize != 0 {
		t.Errorf("DataSize: expected 0, got %d", h.DataSize)
	}
	if h.FileSize != HeaderSize-8 {
		t.Errorf("FileSize: expected %d, got %d", HeaderSize-8, h.FileSize)
	}
}

func TestExportGolden(t *testing.T) {
	buf := audio.New(audio.Format{Channels: 1, SampleRate: 8000})
	buf.Append(0, 100, -100, 32767, -32768)

	var out bytes.Buffer
	if err := NewFile(buf).Export(&out); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	want := []byte{
		'R', 'I', 'F', 'F',
		0x2E, 0x00, 0x00, 0x00, // file size 46
		'W', 'A', 'V', 'E',
		'f', 'm', 't', ' ',
		0x10, 0x00, 0x00, 0x00, // fmt chunk size 16
		0x01, 0x00, // PCM
		0x01, 0x00, // 1 channel
		0x40, 0x1F, 0x00, 0x00, // 8000 Hz
		0x80, 0x3E, 0x00, 0x00, // byte rate 16000
		0x02, 0x00, // block align
		0x10, 0x00, // 16 bits per sample
		'd', 'a', 't', 'a',
		0x0A, 0x00, 0x00, 0x00, // data size 10
		0x00, 0x00, // 0
		0x64, 0x00, // 100
		0x9C, 0xFF, // -100
		0xFF, 0x7F, // 32767
		0x00, 0x80, // -32768
	}

	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("output mismatch\nexpected % X\ngot      % X", want, out.Bytes())
	}
}

func TestExportEmptyBuffer(t *testing.T) {
	buf := audio.New(audio.Format{Channels: 2, SampleRate: 44100})

	var out bytes.Buffer
	if err := NewFile(buf).Export(&out); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if out.Len() != HeaderSize {
		t.Errorf("expected %d header-only bytes, got %d", HeaderSize, out.Len())
	}
	f := NewFile(buf)
	if f.Header.DataSize != 0 {
		t.Errorf("DataSize: expected 0, got %d", f.Header.DataSize)
	}
}

func TestExportDeterministic(t *testing.T) {
	buf := audio.New(audio.Format{Channels: 2, SampleRate: 22050})
	buf.Append(7, -7, 300, -300, 0, 0)
	f := NewFile(buf)

	var first, second bytes.Buffer
	if err := f.Export(&first); err != nil {
		t.Fatalf("first export failed: %v", err)
	}
	if err := f.Export(&second); err != nil {
		t.Fatalf("second export failed: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("exports of the same record differ")
	}
}

type failingWriter struct{ err error }

func (w *failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestExportWriteFailure(t *testing.T) {
	buf := audio.New(audio.Format{Channels: 1, SampleRate: 8000})
	buf.Append(1, 2, 3)

	cause := errors.New("disk full")
	err := NewFile(buf).Export(&failingWriter{err: cause})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrWrite) {
		t.Errorf("expected ErrWrite, got %v", err)
	}
	if errors.Is(err, ErrEncode) {
		t.Error("write failure reported as encoding failure")
	}
	if !errors.Is(err, cause) {
		t.Error("underlying cause not attached")
	}
}

func TestExportErrorUnwrap(t *testing.T) {
	cause := errors.New("short buffer")
	err := &ExportError{Kind: ErrEncode, Err: cause}

	if !errors.Is(err, ErrEncode) {
		t.Error("kind sentinel not matched")
	}
	if !errors.Is(err, cause) {
		t.Error("cause not matched")
	}
}
