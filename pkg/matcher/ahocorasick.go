package matcher

import (
	"github.com/praetorian-inc/ipmt/pkg/command"
	"github.com/praetorian-inc/ipmt/pkg/types"
)

type acNode struct {
	next map[byte]int
	fail int
	// out holds the indices of every pattern ending at this node, including
	// those reached through fail links.
	out []int
}

// ahoCorasick searches all patterns in a single pass over the text.
type ahoCorasick struct {
	nodes   []acNode
	lengths []int
}

func newAhoCorasick(patterns [][]byte) *ahoCorasick {
	m := &ahoCorasick{
		nodes:   []acNode{{next: make(map[byte]int)}},
		lengths: make([]int, len(patterns)),
	}

	for pi, p := range patterns {
		m.lengths[pi] = len(p)
		cur := 0
		for _, c := range p {
			nxt, ok := m.nodes[cur].next[c]
			if !ok {
				nxt = len(m.nodes)
				m.nodes = append(m.nodes, acNode{next: make(map[byte]int)})
				m.nodes[cur].next[c] = nxt
			}
			cur = nxt
		}
		m.nodes[cur].out = append(m.nodes[cur].out, pi)
	}

	m.buildFailLinks()
	return m
}

// buildFailLinks sets fail links breadth-first so a node's fail target is
// always finished before the node itself.
func (m *ahoCorasick) buildFailLinks() {
	queue := make([]int, 0, len(m.nodes))
	for _, child := range m.nodes[0].next {
		m.nodes[child].fail = 0
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for c, child := range m.nodes[cur].next {
			f := m.nodes[cur].fail
			for f != 0 {
				if _, ok := m.nodes[f].next[c]; ok {
					break
				}
				f = m.nodes[f].fail
			}
			if nxt, ok := m.nodes[f].next[c]; ok && nxt != child {
				m.nodes[child].fail = nxt
			} else {
				m.nodes[child].fail = 0
			}
			fail := m.nodes[child].fail
			m.nodes[child].out = append(m.nodes[child].out, m.nodes[fail].out...)
			queue = append(queue, child)
		}
	}
}

func (m *ahoCorasick) Algorithm() command.Algorithm { return command.AhoCorasick }

func (m *ahoCorasick) Match(text []byte) []types.Occurrence {
	var occs []types.Occurrence
	state := 0
	for i, c := range text {
		for state != 0 {
			if _, ok := m.nodes[state].next[c]; ok {
				break
			}
			state = m.nodes[state].fail
		}
		if nxt, ok := m.nodes[state].next[c]; ok {
			state = nxt
		}
		for _, pi := range m.nodes[state].out {
			occs = append(occs, types.Occurrence{
				Pattern: pi,
				Span:    types.OffsetSpan{Start: i + 1 - m.lengths[pi], End: i + 1},
			})
		}
	}
	types.SortOccurrences(occs)
	return occs
}
