package scanner

import (
	"context"
	"io"

	"github.com/praetorian-inc/ipmt/pkg/enum"
	"github.com/praetorian-inc/ipmt/pkg/matcher"
	"github.com/praetorian-inc/ipmt/pkg/prefilter"
	"github.com/praetorian-inc/ipmt/pkg/types"
	"golang.org/x/sync/errgroup"
)

// Core wraps the matcher and prefilter for line-oriented scanning.
type Core struct {
	matcher   matcher.Matcher
	prefilter *prefilter.Prefilter
	opts      Options
}

// NewCore creates a Core. pf may be nil.
func NewCore(m matcher.Matcher, pf *prefilter.Prefilter, opts Options) *Core {
	return &Core{
		matcher:   m,
		prefilter: pf,
		opts:      opts,
	}
}

// ScanContent searches content line by line.
func (c *Core) ScanContent(name string, content []byte) types.FileResult {
	result := types.FileResult{
		Name:   name,
		Binary: enum.IsBinary(content),
	}
	keepLines := !c.opts.CountOnly && !result.Binary

	for i, line := range types.SplitLines(content) {
		if !c.prefilter.MayMatch(line) {
			continue
		}
		occs := c.matcher.Match(line)
		if len(occs) == 0 {
			continue
		}

		result.Occurrences += len(occs)
		result.MatchedLines++
		if keepLines {
			result.Lines = append(result.Lines, types.LineMatch{
				Number:      i + 1,
				Text:        line,
				Occurrences: occs,
			})
		}
	}
	return result
}

// Scan searches every source and returns one result per source, in source
// order. Unreadable sources yield a result with Err set; only context
// cancellation aborts the scan.
func (c *Core) Scan(ctx context.Context, sources []enum.Source, stdin io.Reader) ([]types.FileResult, error) {
	results := make([]types.FileResult, len(sources))

	// Standard input can be named more than once but is read only once.
	var stdinContent []byte
	var stdinErr error
	for _, src := range sources {
		if src.Err == nil && src.Prov.Kind() == "stdin" {
			stdinContent, stdinErr = enum.ReadSource(src, stdin)
			break
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.workers())

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			var content []byte
			var err error
			if src.Err == nil && src.Prov.Kind() == "stdin" {
				content, err = stdinContent, stdinErr
			} else {
				content, err = enum.ReadSource(src, nil)
			}
			if err != nil {
				results[i] = types.FileResult{Name: src.Name(), Err: err}
				return nil
			}
			results[i] = c.ScanContent(src.Name(), content)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
