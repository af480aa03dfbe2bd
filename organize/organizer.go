// Package organize orchestrates the documentation-organizing pipeline:
// detect stray Markdown files, move them into canonical docs/ folders,
// rewrite links that pointed at them, and verify the tree converged.
package organize

import (
	"context"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/doctidy"
)

// Organizer coordinates the scanner, mover, and rewriter for one run.
type Organizer struct {
	Repo     *doctidy.Repo
	Scanner  doctidy.Scanner
	Mover    doctidy.Mover
	Rewriter doctidy.LinkRewriter
}

// Report holds the outcome of a fix run.
type Report struct {
	Strays  []doctidy.CandidateFile
	Moves   []doctidy.Move
	Updated []string
}

// Detect returns every Markdown file outside the allowed locations, in
// deterministic scan order.
func (o *Organizer) Detect(ctx context.Context) ([]doctidy.CandidateFile, error) {
	files, err := o.Scanner.Scan(ctx, "*.md")
	if err != nil {
		return nil, err
	}
	var strays []doctidy.CandidateFile
	for _, f := range files {
		if !o.Repo.Allowed(f.RelPath) {
			strays = append(strays, f)
		}
	}
	return strays, nil
}

// Fix detects strays, moves them, and rewrites links to the moved files.
// A mover failure aborts the run before any link is rewritten; moves
// completed up to that point are reflected in the returned report.
func (o *Organizer) Fix(ctx context.Context) (*Report, error) {
	strays, err := o.Detect(ctx)
	if err != nil {
		return nil, err
	}
	report := &Report{Strays: strays}
	if len(strays) == 0 {
		return report, nil
	}

	report.Moves, err = o.Mover.MoveAll(ctx, strays)
	if err != nil {
		return report, err
	}

	report.Updated, err = o.Rewriter.Rewrite(ctx, report.Moves)
	if err != nil {
		return report, err
	}
	return report, nil
}

// Verify re-runs stray detection after a fix attempt. Any survivor means
// the fix did not converge, which is fatal.
func (o *Organizer) Verify(ctx context.Context) error {
	strays, err := o.Detect(ctx)
	if err != nil {
		return err
	}
	if len(strays) == 0 {
		return nil
	}
	return doctidy.Errorf(doctidy.EUNPROCESSABLE,
		"some Markdown files are still outside docs/ after attempting to fix:\n%s",
		formatPaths(strays))
}

// CheckDocsRoot verifies that the canonical docs directory holds no
// top-level Markdown file other than its index. Violations are fatal
// regardless of fix mode.
func (o *Organizer) CheckDocsRoot(ctx context.Context) error {
	entries, err := os.ReadDir(o.Repo.Abs(o.Repo.DocsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return doctidy.Errorf(doctidy.EINTERNAL, "read %q: %s", o.Repo.DocsDir, err)
	}

	var misplaced []string
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == o.Repo.IndexFile {
			continue
		}
		if ok, _ := doublestar.Match("*.md", entry.Name()); ok {
			misplaced = append(misplaced, path.Join(o.Repo.DocsDir, entry.Name()))
		}
	}
	if len(misplaced) == 0 {
		return nil
	}
	index := path.Join(o.Repo.DocsDir, o.Repo.IndexFile)
	return doctidy.Errorf(doctidy.EUNPROCESSABLE,
		"docs root should only contain %s; move these files into function folders:\n - %s",
		index, strings.Join(misplaced, "\n - "))
}

func formatPaths(files []doctidy.CandidateFile) string {
	lines := make([]string, 0, len(files))
	for _, f := range files {
		lines = append(lines, " - "+f.RelPath)
	}
	return strings.Join(lines, "\n")
}
