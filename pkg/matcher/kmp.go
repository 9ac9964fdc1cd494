package matcher

import (
	"github.com/praetorian-inc/ipmt/pkg/command"
	"github.com/praetorian-inc/ipmt/pkg/types"
)

type kmpPattern struct {
	pattern []byte
	// border[i] is the length of the longest proper border of pattern[:i+1]
	border []int
}

// kmp runs one Knuth-Morris-Pratt automaton per pattern.
type kmp struct {
	patterns []kmpPattern
}

func newKMP(patterns [][]byte) *kmp {
	m := &kmp{patterns: make([]kmpPattern, len(patterns))}
	for i, p := range patterns {
		m.patterns[i] = kmpPattern{pattern: p, border: borders(p)}
	}
	return m
}

func borders(p []byte) []int {
	border := make([]int, len(p))
	k := 0
	for i := 1; i < len(p); i++ {
		for k > 0 && p[i] != p[k] {
			k = border[k-1]
		}
		if p[i] == p[k] {
			k++
		}
		border[i] = k
	}
	return border
}

func (m *kmp) Algorithm() command.Algorithm { return command.KMP }

func (m *kmp) Match(text []byte) []types.Occurrence {
	var occs []types.Occurrence
	for pi, kp := range m.patterns {
		p := kp.pattern
		q := 0
		for i, c := range text {
			for q > 0 && p[q] != c {
				q = kp.border[q-1]
			}
			if p[q] == c {
				q++
			}
			if q == len(p) {
				occs = append(occs, types.Occurrence{
					Pattern: pi,
					Span:    types.OffsetSpan{Start: i + 1 - len(p), End: i + 1},
				})
				q = kp.border[q-1]
			}
		}
	}
	types.SortOccurrences(occs)
	return occs
}
