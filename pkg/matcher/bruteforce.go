package matcher

import (
	"github.com/praetorian-inc/ipmt/pkg/command"
	"github.com/praetorian-inc/ipmt/pkg/types"
)

// bruteForce compares every pattern at every text position.
type bruteForce struct {
	patterns [][]byte
}

func newBruteForce(patterns [][]byte) *bruteForce {
	return &bruteForce{patterns: patterns}
}

func (m *bruteForce) Algorithm() command.Algorithm { return command.BruteForce }

func (m *bruteForce) Match(text []byte) []types.Occurrence {
	var occs []types.Occurrence
	for pi, p := range m.patterns {
		for i := 0; i+len(p) <= len(text); i++ {
			j := 0
			for j < len(p) && text[i+j] == p[j] {
				j++
			}
			if j == len(p) {
				occs = append(occs, types.Occurrence{
					Pattern: pi,
					Span:    types.OffsetSpan{Start: i, End: i + len(p)},
				})
			}
		}
	}
	types.SortOccurrences(occs)
	return occs
}
