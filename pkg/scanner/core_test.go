package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/praetorian-inc/ipmt/pkg/command"
	"github.com/praetorian-inc/ipmt/pkg/enum"
	"github.com/praetorian-inc/ipmt/pkg/matcher"
	"github.com/praetorian-inc/ipmt/pkg/prefilter"
	"github.com/praetorian-inc/ipmt/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCore(t *testing.T, patterns []string, editDistance int, opts Options) *Core {
	t.Helper()
	m, err := matcher.New(matcher.Config{Patterns: patterns, EditDistance: editDistance})
	require.NoError(t, err)
	return NewCore(m, prefilter.New(patterns, editDistance), opts)
}

func TestScanContent_Lines(t *testing.T) {
	core := newCore(t, []string{"fox"}, 0, Options{})

	result := core.ScanContent("story.txt", []byte("the quick fox\nno match here\nfox and fox\n"))

	assert.Equal(t, "story.txt", result.Name)
	assert.Equal(t, 3, result.Occurrences)
	assert.Equal(t, 2, result.MatchedLines)
	assert.False(t, result.Binary)
	require.Len(t, result.Lines, 2)

	assert.Equal(t, 1, result.Lines[0].Number)
	assert.Equal(t, "the quick fox", string(result.Lines[0].Text))
	assert.Equal(t, []types.Occurrence{{Pattern: 0, Span: types.OffsetSpan{Start: 10, End: 13}}}, result.Lines[0].Occurrences)

	assert.Equal(t, 3, result.Lines[1].Number)
	assert.Len(t, result.Lines[1].Occurrences, 2)
}

func TestScanContent_CountOnly(t *testing.T) {
	core := newCore(t, []string{"a", "b"}, 0, Options{CountOnly: true})

	result := core.ScanContent("x", []byte("ab\nba\ncc"))
	assert.Equal(t, 4, result.Occurrences)
	assert.Equal(t, 2, result.MatchedLines)
	assert.Empty(t, result.Lines)
}

func TestScanContent_Approximate(t *testing.T) {
	core := newCore(t, []string{"colour"}, 1, Options{})

	result := core.ScanContent("x", []byte("red color\nblue\n"))
	assert.True(t, result.Matched())
	require.Len(t, result.Lines, 1)
	assert.Equal(t, 1, result.Lines[0].Number)
}

func TestScanContent_Binary(t *testing.T) {
	core := newCore(t, []string{"needle"}, 0, Options{})

	result := core.ScanContent("blob", []byte("needle\x00\x01"))
	assert.True(t, result.Binary)
	assert.Equal(t, 1, result.Occurrences)
	assert.Empty(t, result.Lines)
}

func TestScan_PreservesOrderAndErrors(t *testing.T) {
	tmpDir := t.TempDir()
	var paths []string
	for i, content := range []string{"needle", "hay", "needle needle"} {
		path := filepath.Join(tmpDir, string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		paths = append(paths, path)
	}
	paths = append(paths, filepath.Join(tmpDir, "missing.txt"))

	sources, err := enum.Expand(context.Background(), enum.Config{}, paths)
	require.NoError(t, err)

	core := newCore(t, []string{"needle"}, 0, Options{Workers: 2})
	results, err := core.Scan(context.Background(), sources, nil)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, paths[0], results[0].Name)
	assert.Equal(t, 1, results[0].Occurrences)
	assert.Equal(t, 0, results[1].Occurrences)
	assert.Equal(t, 2, results[2].Occurrences)
	assert.Error(t, results[3].Err)
	assert.Equal(t, paths[3], results[3].Name)
}

func TestScan_Stdin(t *testing.T) {
	sources, err := enum.Expand(context.Background(), enum.Config{}, nil)
	require.NoError(t, err)

	core := newCore(t, []string{"needle"}, 0, Options{})
	results, err := core.Scan(context.Background(), sources, strings.NewReader("hay\nneedle\n"))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "(standard input)", results[0].Name)
	require.Len(t, results[0].Lines, 1)
	assert.Equal(t, 2, results[0].Lines[0].Number)
}

func TestScan_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sources := []enum.Source{{Prov: types.StdinProvenance{}}}
	core := newCore(t, []string{"needle"}, 0, Options{})
	_, err := core.Scan(ctx, sources, strings.NewReader("needle"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScan_ExplicitAlgorithm(t *testing.T) {
	m, err := matcher.New(matcher.Config{Algorithm: command.BruteForce, Patterns: []string{"aa"}})
	require.NoError(t, err)
	core := NewCore(m, nil, Options{})

	result := core.ScanContent("x", []byte("aaa"))
	assert.Equal(t, 2, result.Occurrences)
	assert.Equal(t, 1, result.MatchedLines)
}

func TestScan_StdinNamedTwice(t *testing.T) {
	sources, err := enum.Expand(context.Background(), enum.Config{}, []string{"-", "-"})
	require.NoError(t, err)
	require.Len(t, sources, 2)

	core := newCore(t, []string{"needle"}, 0, Options{Workers: 2})
	results, err := core.Scan(context.Background(), sources, strings.NewReader("needle\n"))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Occurrences)
	assert.Equal(t, 1, results[1].Occurrences)
}
