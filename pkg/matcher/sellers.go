package matcher

import (
	"github.com/praetorian-inc/ipmt/pkg/command"
	"github.com/praetorian-inc/ipmt/pkg/types"
)

// sellers finds approximate occurrences with the Sellers dynamic program:
// one column of edit distances per text position, with row 0 pinned to zero so
// an occurrence may start anywhere.
type sellers struct {
	patterns [][]byte
	maxDist  int
}

func newSellers(patterns [][]byte, maxDist int) *sellers {
	return &sellers{patterns: patterns, maxDist: maxDist}
}

func (m *sellers) Algorithm() command.Algorithm { return command.Sellers }

// Match reports one occurrence per text end position whose distance is within
// maxDist. The span starts where the cheapest alignment ending there begins.
func (m *sellers) Match(text []byte) []types.Occurrence {
	var occs []types.Occurrence
	for pi, p := range m.patterns {
		occs = append(occs, m.matchPattern(pi, p, text)...)
	}
	types.SortOccurrences(occs)
	return occs
}

func (m *sellers) matchPattern(pi int, p, text []byte) []types.Occurrence {
	n := len(p)
	prevDist := make([]int, n+1)
	prevStart := make([]int, n+1)
	curDist := make([]int, n+1)
	curStart := make([]int, n+1)

	for i := range prevDist {
		prevDist[i] = i
	}

	var occs []types.Occurrence
	for j, c := range text {
		curDist[0] = 0
		curStart[0] = j + 1

		for i := 1; i <= n; i++ {
			cost := 1
			if p[i-1] == c {
				cost = 0
			}

			// substitution or match
			d, s := prevDist[i-1]+cost, prevStart[i-1]
			// text character left unmatched
			if prevDist[i]+1 < d {
				d, s = prevDist[i]+1, prevStart[i]
			}
			// pattern character left unmatched
			if curDist[i-1]+1 < d {
				d, s = curDist[i-1]+1, curStart[i-1]
			}
			curDist[i], curStart[i] = d, s
		}

		if curDist[n] <= m.maxDist {
			occs = append(occs, types.Occurrence{
				Pattern:  pi,
				Span:     types.OffsetSpan{Start: curStart[n], End: j + 1},
				Distance: curDist[n],
			})
		}

		prevDist, curDist = curDist, prevDist
		prevStart, curStart = curStart, prevStart
	}
	return occs
}
