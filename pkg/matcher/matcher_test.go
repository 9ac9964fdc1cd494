package matcher

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/praetorian-inc/ipmt/pkg/command"
	"github.com/praetorian-inc/ipmt/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exactAlgorithms = []command.Algorithm{
	command.BruteForce,
	command.KMP,
	command.AhoCorasick,
	command.Sellers, // edit distance 0 is an exact search
}

func occ(pattern, start, end int) types.Occurrence {
	return types.Occurrence{Pattern: pattern, Span: types.OffsetSpan{Start: start, End: end}}
}

func TestMatch_Exact(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		text     string
		want     []types.Occurrence
	}{
		{
			name:     "single pattern",
			patterns: []string{"abra"},
			text:     "abracadabra",
			want:     []types.Occurrence{occ(0, 0, 4), occ(0, 7, 11)},
		},
		{
			name:     "overlapping occurrences",
			patterns: []string{"aa"},
			text:     "aaaa",
			want:     []types.Occurrence{occ(0, 0, 2), occ(0, 1, 3), occ(0, 2, 4)},
		},
		{
			name:     "multiple patterns",
			patterns: []string{"he", "she", "his", "hers"},
			text:     "ushers",
			want:     []types.Occurrence{occ(1, 1, 4), occ(0, 2, 4), occ(3, 2, 6)},
		},
		{
			name:     "pattern is suffix of another",
			patterns: []string{"abcd", "cd"},
			text:     "xabcd",
			want:     []types.Occurrence{occ(0, 1, 5), occ(1, 3, 5)},
		},
		{
			name:     "no match",
			patterns: []string{"zzz"},
			text:     "abracadabra",
			want:     nil,
		},
		{
			name:     "pattern longer than text",
			patterns: []string{"abracadabra!"},
			text:     "abra",
			want:     nil,
		},
		{
			name:     "empty text",
			patterns: []string{"a"},
			text:     "",
			want:     nil,
		},
		{
			name:     "whole text",
			patterns: []string{"needle"},
			text:     "needle",
			want:     []types.Occurrence{occ(0, 0, 6)},
		},
	}

	for _, tt := range tests {
		for _, alg := range exactAlgorithms {
			t.Run(tt.name+"/"+alg.String(), func(t *testing.T) {
				m, err := New(Config{Algorithm: alg, Patterns: tt.patterns})
				require.NoError(t, err)
				assert.Equal(t, alg, m.Algorithm())
				assert.Equal(t, tt.want, m.Match([]byte(tt.text)))
			})
		}
	}
}

func TestMatch_AgreesWithBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	randString := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = "ab"[rng.Intn(2)]
		}
		return string(b)
	}

	for round := 0; round < 200; round++ {
		text := randString(rng.Intn(40))
		patterns := make([]string, 1+rng.Intn(4))
		for i := range patterns {
			patterns[i] = randString(1 + rng.Intn(5))
		}

		oracle, err := New(Config{Algorithm: command.BruteForce, Patterns: patterns})
		require.NoError(t, err)
		want := oracle.Match([]byte(text))

		for _, alg := range exactAlgorithms[1:] {
			m, err := New(Config{Algorithm: alg, Patterns: patterns})
			require.NoError(t, err)
			assert.Equal(t, want, m.Match([]byte(text)), "%s patterns=%q text=%q", alg, patterns, text)
		}
	}
}

func TestSellers_Approximate(t *testing.T) {
	m, err := New(Config{Algorithm: command.Sellers, Patterns: []string{"abc"}, EditDistance: 1})
	require.NoError(t, err)

	got := m.Match([]byte("xabcx"))
	assert.Equal(t, []types.Occurrence{
		{Pattern: 0, Span: types.OffsetSpan{Start: 1, End: 3}, Distance: 1},
		{Pattern: 0, Span: types.OffsetSpan{Start: 1, End: 4}, Distance: 0},
		{Pattern: 0, Span: types.OffsetSpan{Start: 1, End: 5}, Distance: 1},
	}, got)
}

func TestSellers_Substitution(t *testing.T) {
	m, err := New(Config{Algorithm: command.Sellers, Patterns: []string{"color"}, EditDistance: 1})
	require.NoError(t, err)

	got := m.Match([]byte("the colour red"))
	require.NotEmpty(t, got)
	for _, o := range got {
		assert.LessOrEqual(t, o.Distance, 1)
	}

	var best *types.Occurrence
	for i := range got {
		if got[i].Span.End == len("the colour") {
			best = &got[i]
		}
	}
	require.NotNil(t, best, "expected an occurrence ending after \"colour\"")
	assert.Equal(t, 1, best.Distance)
	assert.Equal(t, len("the "), best.Span.Start)
}

func TestSellers_NoMatchBeyondDistance(t *testing.T) {
	m, err := New(Config{Algorithm: command.Sellers, Patterns: []string{"abcd"}, EditDistance: 1})
	require.NoError(t, err)
	assert.Empty(t, m.Match([]byte("xxxxxxxx")))
}

func TestResolve_Default(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want command.Algorithm
	}{
		{"single pattern", Config{Patterns: []string{"a"}}, command.KMP},
		{"several patterns", Config{Patterns: []string{"a", "b"}}, command.AhoCorasick},
		{"edit distance", Config{Patterns: []string{"a", "b"}, EditDistance: 2}, command.Sellers},
		{"explicit wins", Config{Algorithm: command.BruteForce, Patterns: []string{"a", "b"}}, command.BruteForce},
		{"sellers without distance", Config{Algorithm: command.Sellers, Patterns: []string{"a"}}, command.Sellers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.Resolve()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			m, err := New(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Algorithm())
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"no patterns", Config{}, ErrEmptyPattern},
		{"empty pattern", Config{Patterns: []string{"a", ""}}, ErrEmptyPattern},
		{"negative distance", Config{Patterns: []string{"a"}, EditDistance: -1}, ErrNegativeEditDistance},
		{"exact with distance", Config{Algorithm: command.KMP, Patterns: []string{"a"}, EditDistance: 1}, ErrEditDistanceExact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
