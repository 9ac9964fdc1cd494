package matcher

import (
	"github.com/praetorian-inc/ipmt/pkg/command"
	"github.com/praetorian-inc/ipmt/pkg/types"
)

// Matcher finds pattern occurrences in text.
type Matcher interface {
	// Match returns every occurrence of every pattern in text, overlapping
	// occurrences included, ordered by types.SortOccurrences.
	Match(text []byte) []types.Occurrence

	// Algorithm reports the engine actually in use (never command.Default).
	Algorithm() command.Algorithm
}

// New creates the Matcher selected by cfg.
func New(cfg Config) (Matcher, error) {
	alg, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	patterns := make([][]byte, len(cfg.Patterns))
	for i, p := range cfg.Patterns {
		patterns[i] = []byte(p)
	}

	switch alg {
	case command.BruteForce:
		return newBruteForce(patterns), nil
	case command.KMP:
		return newKMP(patterns), nil
	case command.AhoCorasick:
		return newAhoCorasick(patterns), nil
	default:
		return newSellers(patterns, cfg.EditDistance), nil
	}
}
