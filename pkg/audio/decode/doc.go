// ABOUTME: Audio source package for populating sample buffers
// ABOUTME: Decodes PCM, MP3 and FLAC input into 16-bit buffers
// Package decode populates sample buffers from external audio sources.
//
// Supports: raw 16-bit little-endian PCM, MP3, FLAC.
//
// Each source decodes its input wholesale into an audio.Buffer whose
// format is taken from the source stream. Samples wider than 16 bits
// are scaled down; the result is always interleaved 16-bit PCM.
//
// Example:
//
//	f, err := os.Open("song.flac")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	buf, err := decode.ReadFLAC(f)
package decode
