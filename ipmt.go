// Package ipmt provides exact and approximate multi-pattern string search.
//
// # Basic Usage
//
// Create a searcher for one or more patterns and search text:
//
//	searcher, err := ipmt.NewSearcher([]string{"he", "she", "hers"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, occ := range searcher.FindString("ushers") {
//	    fmt.Printf("pattern %d at [%d, %d)\n", occ.Pattern, occ.Span.Start, occ.Span.End)
//	}
//
// # Approximate Search
//
// Allow edits per occurrence with WithEditDistance (Sellers algorithm):
//
//	searcher, err := ipmt.NewSearcher([]string{"colour"}, ipmt.WithEditDistance(1))
//	n := searcher.Count("the color red")
package ipmt

import (
	"fmt"
	"os"

	"github.com/praetorian-inc/ipmt/pkg/command"
	"github.com/praetorian-inc/ipmt/pkg/matcher"
	"github.com/praetorian-inc/ipmt/pkg/pattern"
	"github.com/praetorian-inc/ipmt/pkg/types"
)

// Re-export commonly used types for convenience.
type (
	// Occurrence is a single pattern hit.
	Occurrence = types.Occurrence

	// Algorithm selects the matching engine.
	Algorithm = command.Algorithm
)

// Re-export algorithm constants.
const (
	Default     = command.Default
	BruteForce  = command.BruteForce
	KMP         = command.KMP
	AhoCorasick = command.AhoCorasick
	Sellers     = command.Sellers
)

// Searcher finds pattern occurrences. It is safe for concurrent use.
type Searcher struct {
	matcher  matcher.Matcher
	patterns []string
}

// searcherConfig holds searcher configuration.
type searcherConfig struct {
	algorithm    Algorithm
	editDistance int
}

// Option configures a Searcher.
type Option func(*searcherConfig)

// WithAlgorithm forces a matching algorithm instead of picking one from the
// pattern set and edit distance.
func WithAlgorithm(a Algorithm) Option {
	return func(c *searcherConfig) {
		c.algorithm = a
	}
}

// WithEditDistance allows up to n edits (insertions, deletions,
// substitutions) per occurrence.
func WithEditDistance(n int) Option {
	return func(c *searcherConfig) {
		c.editDistance = n
	}
}

// NewSearcher creates a Searcher for patterns.
func NewSearcher(patterns []string, opts ...Option) (*Searcher, error) {
	config := &searcherConfig{algorithm: Default}
	for _, opt := range opts {
		opt(config)
	}

	m, err := matcher.New(matcher.Config{
		Algorithm:    config.algorithm,
		Patterns:     patterns,
		EditDistance: config.editDistance,
	})
	if err != nil {
		return nil, fmt.Errorf("creating matcher: %w", err)
	}

	return &Searcher{
		matcher:  m,
		patterns: append([]string(nil), patterns...),
	}, nil
}

// NewSearcherFromFile creates a Searcher for the patterns in a pattern file,
// one per line.
func NewSearcherFromFile(path string, opts ...Option) (*Searcher, error) {
	patterns, err := pattern.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewSearcher(patterns, opts...)
}

// Find returns every occurrence in content.
func (s *Searcher) Find(content []byte) []Occurrence {
	return s.matcher.Match(content)
}

// FindString returns every occurrence in content.
func (s *Searcher) FindString(content string) []Occurrence {
	return s.Find([]byte(content))
}

// FindFile reads a file and returns every occurrence in it.
func (s *Searcher) FindFile(path string) ([]Occurrence, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return s.Find(content), nil
}

// Count returns the number of occurrences in content.
func (s *Searcher) Count(content string) int {
	return len(s.FindString(content))
}

// Algorithm returns the algorithm in use.
func (s *Searcher) Algorithm() Algorithm {
	return s.matcher.Algorithm()
}

// Patterns returns a copy of the patterns searched for.
func (s *Searcher) Patterns() []string {
	return append([]string(nil), s.patterns...)
}
