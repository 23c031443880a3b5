// Package seam translates character ranges in markup-stripped text back
// to ranges in the original source the stripped text was derived from.
//
// The stripped text must be a byte subsequence of the original. The
// alignment is built once per document pair; afterwards a Finder is
// immutable, so concurrent lookups need no locking.
package seam

// A seam records a maximal run of original characters elided from the
// stripped text, anchored at the stripped offset where the run was cut.
type seam struct {
	strippedIndex int
	deleted       int
}

// Finder answers stripped-to-original range translations.
type Finder struct {
	seams []seam
}

// New walks original and stripped with two cursors and records every
// elided run. The walk ends when either cursor exhausts its text; if
// stripped is not a genuine subsequence of original, seams for the
// unmatched suffix are silently missing and lookups into that suffix
// return under-corrected ranges.
func New(original, stripped string) *Finder {
	f := &Finder{}
	runStart := -1
	oi, si := 0, 0
	for oi < len(original) && si < len(stripped) {
		if original[oi] == stripped[si] {
			if runStart >= 0 {
				f.seams = append(f.seams, seam{si, oi - runStart})
				runStart = -1
			}
			oi++
			si++
			continue
		}
		if runStart < 0 {
			runStart = oi
		}
		oi++
	}
	return f
}

// Len returns the number of recorded seams.
func (f *Finder) Len() int { return len(f.seams) }

// Lookup translates the half-open range [offset, offset+length) in
// stripped coordinates to the equivalent range in the original text.
// Every seam at or before the range start shifts the start; every seam
// strictly before the range end stretches the length. The scan is
// linear in the seam count, which is bounded by the number of discrete
// markup elisions, not by document size.
func (f *Finder) Lookup(offset, length int) (originalOffset, originalLength int) {
	startCorrection, endCorrection := 0, 0
	end := offset + length
	for _, s := range f.seams {
		if s.strippedIndex <= offset {
			startCorrection += s.deleted
		}
		if s.strippedIndex < end {
			endCorrection += s.deleted
		}
	}
	return offset + startCorrection, length + (endCorrection - startCorrection)
}
