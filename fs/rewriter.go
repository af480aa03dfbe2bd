package fs

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/doctidy"
)

// Ensure Rewriter implements doctidy.LinkRewriter at compile time.
var _ doctidy.LinkRewriter = (*Rewriter)(nil)

// Rewriter updates textual references to moved files across every
// text-bearing file in the tree.
//
// Rewriting is literal substring substitution, applied for every move
// against each file's full text. That is O(files x moves) and can touch
// unrelated text that happens to spell out an old path; both are accepted
// limitations at repository scale, and structural Markdown editing would
// change observable behavior.
type Rewriter struct {
	repo    *doctidy.Repo
	scanner doctidy.Scanner
}

// NewRewriter creates a new Rewriter that scans with the given scanner.
func NewRewriter(repo *doctidy.Repo, scanner doctidy.Scanner) *Rewriter {
	return &Rewriter{repo: repo, scanner: scanner}
}

// Rewrite replaces every old spelling of each moved path with the new
// spelling computed relative to the referencing file's own directory.
// Files whose content did not change are left untouched; non-UTF-8 files
// are assumed binary and skipped. Returns the root-relative paths of the
// files that were rewritten.
func (w *Rewriter) Rewrite(ctx context.Context, moves []doctidy.Move) ([]string, error) {
	if len(moves) == 0 {
		return nil, nil
	}

	files, err := w.scanner.Scan(ctx, "*")
	if err != nil {
		return nil, err
	}

	var updated []string
	for _, f := range files {
		if !w.repo.TextFile(filepath.Base(f.Path)) {
			continue
		}

		raw, err := os.ReadFile(f.Path)
		if err != nil {
			return updated, doctidy.Errorf(doctidy.EINTERNAL, "read %q: %s", f.RelPath, err)
		}
		if !utf8.Valid(raw) {
			continue
		}

		text := string(raw)
		before := xxhash.Sum64String(text)
		fileDir := path.Dir(f.RelPath)

		for _, mv := range moves {
			newRel := relativeTo(fileDir, mv.To)
			// Single pass per move: a bare spelling like "x.md" is a
			// substring of both its prefixed spellings and of the
			// replacement itself, so replaced text must never be
			// rescanned by a shorter needle of the same move.
			pairs := make([]string, 0, 8)
			for _, needle := range oldSpellings(fileDir, mv.From) {
				pairs = append(pairs, needle, newRel)
			}
			text = strings.NewReplacer(pairs...).Replace(text)
		}

		if xxhash.Sum64String(text) == before {
			continue
		}
		if err := os.WriteFile(f.Path, []byte(text), 0644); err != nil {
			return updated, doctidy.Errorf(doctidy.EINTERNAL, "write %q: %s", f.RelPath, err)
		}
		updated = append(updated, f.RelPath)
	}
	return updated, nil
}

// oldSpellings returns every plausible textual spelling of the moved file's
// old location as seen from fileDir: the root-relative path, the path
// relative to fileDir, and both with a "./" prefix. Longer needles are
// replaced first so a prefixed spelling is never half-consumed by its
// unprefixed suffix.
func oldSpellings(fileDir, from string) []string {
	fromFile := relativeTo(fileDir, from)

	seen := map[string]bool{}
	var spellings []string
	for _, s := range []string{from, "./" + from, fromFile, "./" + fromFile} {
		if !seen[s] {
			seen[s] = true
			spellings = append(spellings, s)
		}
	}
	sort.Slice(spellings, func(i, j int) bool {
		if len(spellings[i]) != len(spellings[j]) {
			return len(spellings[i]) > len(spellings[j])
		}
		return spellings[i] < spellings[j]
	})
	return spellings
}

// relativeTo expresses the root-relative target path relative to the
// root-relative directory fromDir, in slash form.
func relativeTo(fromDir, target string) string {
	rel, err := filepath.Rel(filepath.FromSlash(fromDir), filepath.FromSlash(target))
	if err != nil {
		return target
	}
	return filepath.ToSlash(rel)
}
