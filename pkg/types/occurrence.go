package types

import "sort"

// Occurrence is a single pattern hit inside a searched text.
type Occurrence struct {
	Pattern  int        // index into the pattern list
	Span     OffsetSpan // byte range of the hit within the searched text
	Distance int        // edit distance of the hit; 0 for exact matches
}

// SortOccurrences orders by start offset, then end offset, then pattern index.
func SortOccurrences(occs []Occurrence) {
	sort.Slice(occs, func(i, j int) bool {
		a, b := occs[i], occs[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		if a.Span.End != b.Span.End {
			return a.Span.End < b.Span.End
		}
		return a.Pattern < b.Pattern
	})
}
