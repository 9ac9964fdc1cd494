package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/praetorian-inc/ipmt/pkg/command"
	"github.com/praetorian-inc/ipmt/pkg/config"
	"github.com/praetorian-inc/ipmt/pkg/enum"
	"github.com/praetorian-inc/ipmt/pkg/matcher"
	"github.com/praetorian-inc/ipmt/pkg/pattern"
	"github.com/praetorian-inc/ipmt/pkg/prefilter"
	"github.com/praetorian-inc/ipmt/pkg/report"
	"github.com/praetorian-inc/ipmt/pkg/scanner"
	"github.com/spf13/cobra"
)

func runSearch(cmd *cobra.Command, args []string) error {
	parsed, err := command.Parse(args)
	if err != nil {
		var argErr *command.ArgumentError
		if errors.As(err, &argErr) {
			return fmt.Errorf("%w\nTry '%s --help' for more information", err, programName)
		}
		return err
	}

	out := cmd.OutOrStdout()
	if parsed.Has(command.OptHelp) {
		styles := report.NewStyles(report.ColorEnabled("auto", out))
		return report.Usage(out, styles, programName, versionString())
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	styles := report.NewStyles(report.ColorEnabled(cfg.Color, out))

	patterns, err := pattern.Resolve(parsed)
	if err != nil {
		if errors.Is(err, pattern.ErrNoPattern) {
			return fmt.Errorf("%w\nTry '%s --help' for more information", err, programName)
		}
		return fmt.Errorf("loading patterns: %w", err)
	}

	m, err := matcher.New(matcher.Config{
		Algorithm:    parsed.Algorithm(),
		Patterns:     patterns,
		EditDistance: parsed.EditDistance(),
	})
	if err != nil {
		return fmt.Errorf("creating matcher: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	textFiles := parsed.TextFiles()
	sources, err := enum.Expand(ctx, cfg.Enum(), textFiles)
	if err != nil {
		return fmt.Errorf("enumerating text files: %w", err)
	}

	core := scanner.NewCore(m, prefilter.New(patterns, parsed.EditDistance()), scanner.Options{
		Workers:   cfg.Workers,
		CountOnly: parsed.Has(command.OptCount),
	})
	results, err := core.Scan(ctx, sources, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("scanning: %w", err)
	}

	errOut := cmd.ErrOrStderr()
	errStyles := report.NewStyles(report.ColorEnabled(cfg.Color, errOut))
	trouble := false
	matched := false
	for _, r := range results {
		if r.Err != nil {
			trouble = true
			if err := report.Warning(errOut, errStyles, programName, r.Err); err != nil {
				return fmt.Errorf("writing warning: %w", err)
			}
			continue
		}
		if r.Matched() {
			matched = true
		}
	}

	w := report.NewWriter(out, styles, len(textFiles) > 1 || len(sources) > 1)
	if parsed.Has(command.OptCount) {
		err = w.Counts(results)
	} else {
		err = w.Lines(results)
	}
	if err != nil {
		return fmt.Errorf("writing results: %w", err)
	}

	switch {
	case trouble:
		return statusTrouble
	case !matched:
		return statusNoMatch
	}
	return nil
}
