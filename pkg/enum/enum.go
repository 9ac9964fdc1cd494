package enum

import (
	"context"
	"fmt"
	"os"

	"github.com/praetorian-inc/ipmt/pkg/types"
)

// Source is one text to search.
type Source struct {
	Prov types.Provenance
	// Err is set when the source could not be opened; scanning reports it and moves on.
	Err error
}

// Name returns the display name of the source.
func (s Source) Name() string {
	return s.Prov.Path()
}

// Enumerator discovers sources to search.
type Enumerator interface {
	// Enumerate yields sources in a stable order.
	Enumerate(ctx context.Context, callback func(src Source) error) error
}

// Config for enumeration of directories named on the command line.
type Config struct {
	// IncludeHidden includes hidden files/directories (starting with .).
	IncludeHidden bool

	// MaxFileSize is the maximum file size to process (0 = no limit).
	MaxFileSize int64

	// FollowSymlinks includes symbolic links to regular files.
	FollowSymlinks bool
}

// StdinPath is the text file name that stands for standard input.
const StdinPath = "-"

// Expand turns command-line text file paths into sources, in order.
// Directories are walked; files are used as given even if hidden or large.
// No paths means standard input.
func Expand(ctx context.Context, config Config, paths []string) ([]Source, error) {
	if len(paths) == 0 {
		return []Source{{Prov: types.StdinProvenance{}}}, nil
	}

	var sources []Source
	for _, path := range paths {
		if path == StdinPath {
			sources = append(sources, Source{Prov: types.StdinProvenance{}})
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			sources = append(sources, Source{Prov: types.FileProvenance{FilePath: path}, Err: err})
			continue
		}

		if !info.IsDir() {
			sources = append(sources, Source{Prov: types.FileProvenance{FilePath: path}})
			continue
		}

		err = NewFilesystemEnumerator(path, config).Enumerate(ctx, func(src Source) error {
			sources = append(sources, src)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", path, err)
		}
	}
	return sources, nil
}
