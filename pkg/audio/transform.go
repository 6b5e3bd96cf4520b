// ABOUTME: Range-scoped sample transform
// ABOUTME: Applies a per-sample function over a flat index range
package audio

// SampleFunc maps one sample to another. Transforms assume f is pure;
// positions are still visited in ascending order, so a closure that
// tracks position observes samples left to right.
type SampleFunc func(int16) int16

// Range is a half-open interval [Start, End) over flat sample
// positions, spanning all channels.
type Range struct {
	Start int
	End   int
}

// Contains reports whether flat position n falls inside the range.
func (r Range) Contains(n int) bool {
	return n >= r.Start && n < r.End
}

// Map returns a new buffer of identical format and length where every
// flat position inside r has been replaced by f(original) and every
// position outside r is copied unchanged. Positions past the buffer's
// length are ignored; an empty range yields an identity copy. The
// receiver is never modified.
func (b *Buffer) Map(r Range, f SampleFunc) *Buffer {
	samples := make([]int16, len(b.Samples))
	for i, s := range b.Samples {
		if r.Contains(i) {
			samples[i] = f(s)
		} else {
			samples[i] = s
		}
	}
	return &Buffer{Format: b.Format, Samples: samples}
}
