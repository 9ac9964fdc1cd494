// Package pattern resolves the patterns an invocation searches for.
package pattern

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/praetorian-inc/ipmt/pkg/command"
)

var (
	// ErrNoPattern is returned when neither a pattern nor a pattern file was given.
	ErrNoPattern = errors.New("no pattern given")

	// ErrNoPatterns is returned when a pattern file holds no patterns.
	ErrNoPatterns = errors.New("no patterns found")

	// ErrMultilinePattern is returned for a pattern containing a newline.
	// Text is searched line by line, so such a pattern could never match.
	ErrMultilinePattern = errors.New("pattern must not contain a newline")
)

// Resolve returns the patterns for cmd: the literal pattern, or the lines
// of the pattern file.
func Resolve(cmd *command.Command) ([]string, error) {
	if path, ok := cmd.PatternFile(); ok {
		return LoadFile(path)
	}
	if p, ok := cmd.Pattern(); ok {
		if strings.Contains(p, "\n") {
			return nil, fmt.Errorf("%w: %q", ErrMultilinePattern, p)
		}
		return []string{p}, nil
	}
	return nil, ErrNoPattern
}

// LoadFile reads one pattern per line. Blank lines and repeats are dropped.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file %s: %w", path, err)
	}

	patterns, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return patterns, nil
}

// Parse splits pattern file content into patterns, keeping first-seen order.
func Parse(content string) ([]string, error) {
	seen := make(map[string]bool)
	var patterns []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		patterns = append(patterns, line)
	}

	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}
	return patterns, nil
}
