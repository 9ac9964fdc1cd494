package enum

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/praetorian-inc/ipmt/pkg/types"
)

// FilesystemEnumerator enumerates files below a directory.
type FilesystemEnumerator struct {
	root   string
	config Config
}

// NewFilesystemEnumerator creates a new filesystem enumerator.
func NewFilesystemEnumerator(root string, config Config) *FilesystemEnumerator {
	return &FilesystemEnumerator{root: root, config: config}
}

// Enumerate walks the tree in lexical order and yields eligible files.
// Entries that cannot be read, including an unreadable .gitignore, are
// yielded with Err set and the walk continues past them.
func (e *FilesystemEnumerator) Enumerate(ctx context.Context, callback func(src Source) error) error {
	// Load .gitignore patterns if present
	var ignore *gitignore.GitIgnore
	gitignorePath := filepath.Join(e.root, ".gitignore")
	if _, err := os.Stat(gitignorePath); err == nil {
		ignore, err = gitignore.CompileIgnoreFile(gitignorePath)
		if err != nil {
			src := Source{
				Prov: types.FileProvenance{FilePath: gitignorePath},
				Err:  fmt.Errorf("loading ignore rules: %w", err),
			}
			if err := callback(src); err != nil {
				return err
			}
		}
	}

	return filepath.Walk(e.root, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			// info is nil when the entry itself could not be stat'ed.
			if info != nil && e.skip(path, info, ignore) {
				return nil
			}
			return callback(Source{Prov: types.FileProvenance{FilePath: path}, Err: err})
		}

		if e.skip(path, info, ignore) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 {
			if !e.config.FollowSymlinks {
				return nil
			}
			target, err := os.Stat(path)
			if err != nil || !target.Mode().IsRegular() {
				return nil
			}
			info = target
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		if e.config.MaxFileSize > 0 && info.Size() > e.config.MaxFileSize {
			return nil
		}

		return callback(Source{Prov: types.FileProvenance{FilePath: path}})
	})
}

// skip reports whether path is excluded by .gitignore or the hidden-entry rule.
// The walk root itself is never skipped.
func (e *FilesystemEnumerator) skip(path string, info os.FileInfo, ignore *gitignore.GitIgnore) bool {
	if path == e.root {
		return false
	}
	if ignore != nil {
		if relPath, err := filepath.Rel(e.root, path); err == nil && ignore.MatchesPath(relPath) {
			return true
		}
	}
	return !e.config.IncludeHidden && isHidden(info.Name())
}

// isHidden checks if a filename is hidden (starts with .).
// The special entries "." and ".." are NOT considered hidden.
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}
