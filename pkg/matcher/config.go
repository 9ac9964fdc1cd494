package matcher

import (
	"errors"
	"fmt"

	"github.com/praetorian-inc/ipmt/pkg/command"
)

var (
	// ErrEmptyPattern is returned when there are no patterns or one of them is empty.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrNegativeEditDistance is returned for an edit distance below zero.
	ErrNegativeEditDistance = errors.New("edit distance must not be negative")

	// ErrEditDistanceExact is returned when an exact algorithm is paired with an edit distance.
	ErrEditDistanceExact = errors.New("edit distance requires an approximate algorithm")
)

// Config for matcher initialization.
type Config struct {
	// Algorithm requested on the command line; Default picks one.
	Algorithm command.Algorithm

	// Patterns to search for. Must be non-empty and contain no empty strings.
	Patterns []string

	// EditDistance is the maximum number of edits allowed per occurrence.
	EditDistance int
}

// Resolve validates the config and returns the concrete algorithm to run.
//
// Default becomes Sellers when an edit distance is set, Aho-Corasick for
// several patterns and KMP for a single one.
func (c Config) Resolve() (command.Algorithm, error) {
	if len(c.Patterns) == 0 {
		return command.Default, ErrEmptyPattern
	}
	for i, p := range c.Patterns {
		if p == "" {
			return command.Default, fmt.Errorf("pattern %d: %w", i+1, ErrEmptyPattern)
		}
	}
	if c.EditDistance < 0 {
		return command.Default, fmt.Errorf("%w: %d", ErrNegativeEditDistance, c.EditDistance)
	}

	alg := c.Algorithm
	if alg == command.Default {
		switch {
		case c.EditDistance > 0:
			alg = command.Sellers
		case len(c.Patterns) > 1:
			alg = command.AhoCorasick
		default:
			alg = command.KMP
		}
	}

	if alg.IsExact() && c.EditDistance > 0 {
		return command.Default, fmt.Errorf("%w: %s with edit distance %d", ErrEditDistanceExact, alg, c.EditDistance)
	}
	return alg, nil
}
