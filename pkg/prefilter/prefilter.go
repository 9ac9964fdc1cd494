package prefilter

import (
	"sync"

	"github.com/cloudflare/ahocorasick"
)

// Prefilter uses Aho-Corasick keyword matching to skip lines that cannot
// contain an occurrence.
type Prefilter struct {
	keywords []string
	// ahocorasick.Matcher keeps per-call state, so each goroutine borrows its own.
	matchers sync.Pool
}

// New creates a prefilter for patterns searched with up to editDistance
// edits. With edits allowed, each pattern is cut into editDistance+1 pieces;
// an occurrence keeps at least one piece intact. Returns nil when no useful
// keyword set exists, and a nil Prefilter passes every line.
func New(patterns []string, editDistance int) *Prefilter {
	if editDistance < 0 || len(patterns) == 0 {
		return nil
	}

	keywordSet := make(map[string]bool)
	var keywords []string
	for _, p := range patterns {
		pieces := Pieces(p, editDistance+1)
		if pieces == nil {
			return nil
		}
		for _, piece := range pieces {
			if !keywordSet[piece] {
				keywordSet[piece] = true
				keywords = append(keywords, piece)
			}
		}
	}

	pf := &Prefilter{keywords: keywords}
	pf.matchers.New = func() any {
		return ahocorasick.NewStringMatcher(pf.keywords)
	}
	return pf
}

// Pieces splits p into n contiguous non-empty pieces, the last taking any
// remainder. Returns nil if p is shorter than n.
func Pieces(p string, n int) []string {
	if n < 1 || len(p) < n {
		return nil
	}
	size := len(p) / n
	pieces := make([]string, 0, n)
	for i := 0; i < n-1; i++ {
		pieces = append(pieces, p[i*size:(i+1)*size])
	}
	return append(pieces, p[(n-1)*size:])
}

// Keywords returns the keywords the prefilter looks for.
func (pf *Prefilter) Keywords() []string {
	if pf == nil {
		return nil
	}
	return append([]string(nil), pf.keywords...)
}

// MayMatch returns false only if no keyword occurs in content.
func (pf *Prefilter) MayMatch(content []byte) bool {
	if pf == nil {
		return true
	}
	m := pf.matchers.Get().(*ahocorasick.Matcher)
	defer pf.matchers.Put(m)
	return len(m.Match(content)) > 0
}
