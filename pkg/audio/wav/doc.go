// ABOUTME: WAV container serializer package
// ABOUTME: Encodes sample buffers into the canonical 44-byte PCM WAV layout
// Package wav serializes sample buffers into uncompressed 16-bit PCM WAV
// files. Only the canonical 44-byte header layout is supported; every
// size field in the header is derived from the source buffer's sample
// count and format, so the emitted bytes are deterministic.
//
// Example:
//
//	f, err := os.Create("out.wav")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	if err := wav.NewFile(buf).Export(f); err != nil {
//		return err
//	}
package wav
