// ABOUTME: WAV file record construction and export
// ABOUTME: Encodes header plus payload and writes them to a destination
package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/brieaudio/pcmkit/pkg/audio"
)

// Export error kinds. ExportError always wraps exactly one of these
// together with the underlying cause.
var (
	ErrEncode = errors.New("wav: encoding failed")
	ErrWrite  = errors.New("wav: write failed")
)

// ExportError reports a failed export. Kind is ErrEncode or ErrWrite;
// Err is the underlying cause. errors.Is matches both.
type ExportError struct {
	Kind error
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *ExportError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// File is a finalized WAV record: a computed header plus the source
// buffer's raw samples. Build one from a finished buffer, export it,
// then discard it.
type File struct {
	Header  Header
	Samples []int16
}

// NewFile builds a record from buf. The buffer's samples are taken
// over by the record; the record size is computed from the sample
// count, so the header fields are always consistent with the payload.
func NewFile(buf *audio.Buffer) *File {
	totalSize := uint32(HeaderSize + BytesPerSample*len(buf.Samples))
	return &File{
		Header:  newHeader(totalSize, buf.Format),
		Samples: buf.Samples,
	}
}

// Export encodes the record and writes it to w in a single call:
// header first, then the interleaved sample payload, little-endian
// throughout. A failed export may leave w truncated; there is no
// partial-write recovery.
func (f *File) Export(w io.Writer) error {
	var record bytes.Buffer
	if err := binary.Write(&record, binary.LittleEndian, f.Header); err != nil {
		return &ExportError{Kind: ErrEncode, Err: err}
	}
	if err := binary.Write(&record, binary.LittleEndian, f.Samples); err != nil {
		return &ExportError{Kind: ErrEncode, Err: err}
	}
	if _, err := w.Write(record.Bytes()); err != nil {
		return &ExportError{Kind: ErrWrite, Err: err}
	}
	return nil
}
