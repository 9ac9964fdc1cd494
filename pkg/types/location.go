package types

import "sort"

// OffsetSpan is byte range [Start, End) - half-open interval.
type OffsetSpan struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s OffsetSpan) Len() int {
	return s.End - s.Start
}

// MergeSpans sorts spans and joins overlapping or touching ones.
// The input slice is not modified.
func MergeSpans(spans []OffsetSpan) []OffsetSpan {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]OffsetSpan, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := []OffsetSpan{sorted[0]}
	for _, s := range sorted[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
