// Package fs implements the filesystem-facing components: the tree scanner,
// the file mover, and the link rewriter. Everything operates on a single
// doctidy.Repo and assumes exclusive access to the tree for the duration of
// a run.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/doctidy"
)

// Ensure Scanner implements doctidy.Scanner at compile time.
var _ doctidy.Scanner = (*Scanner)(nil)

// Scanner enumerates files under the repository root.
type Scanner struct {
	repo *doctidy.Repo
}

// NewScanner creates a new Scanner for the given repository.
func NewScanner(repo *doctidy.Repo) *Scanner {
	return &Scanner{repo: repo}
}

// Scan walks the tree depth-first and returns every file whose base name
// matches pattern, excluding skip directories. filepath.WalkDir visits
// entries in lexical order per directory, so the result is deterministic
// across runs on an unchanged tree.
func (s *Scanner) Scan(ctx context.Context, pattern string) ([]doctidy.CandidateFile, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, doctidy.Errorf(doctidy.EINVALID, "invalid file pattern %q", pattern)
	}

	var files []doctidy.CandidateFile
	err := filepath.WalkDir(s.repo.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != s.repo.Root && s.repo.SkipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		ok, err := doublestar.Match(pattern, d.Name())
		if err != nil || !ok {
			return err
		}
		rel, err := s.repo.Rel(p)
		if err != nil {
			return err
		}
		files = append(files, doctidy.CandidateFile{Path: p, RelPath: rel})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
