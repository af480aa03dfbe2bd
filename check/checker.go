// Package check verifies that local Markdown cross-references resolve to
// existing files within the repository.
package check

import (
	"context"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/doctidy"
)

// BrokenLink identifies one unresolvable href: the referencing file
// (root-relative) and the href exactly as written.
type BrokenLink struct {
	File string
	Href string
}

// Checker validates every local Markdown link in the tree.
type Checker struct {
	Repo    *doctidy.Repo
	Scanner doctidy.Scanner
}

// Check scans all Markdown files and returns every link that resolves
// outside the tree or to a non-existent file. Failures are collected, never
// short-circuited; non-UTF-8 files are assumed binary and skipped.
func (c *Checker) Check(ctx context.Context) ([]BrokenLink, error) {
	files, err := c.Scanner.Scan(ctx, "*.md")
	if err != nil {
		return nil, err
	}

	var broken []BrokenLink
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return broken, err
		}

		raw, err := os.ReadFile(f.Path)
		if err != nil {
			return broken, doctidy.Errorf(doctidy.EINTERNAL, "read %q: %s", f.RelPath, err)
		}
		if !utf8.Valid(raw) {
			continue
		}

		for _, href := range doctidy.ExtractHrefs(string(raw)) {
			if !doctidy.IsMarkdownHref(href) {
				continue
			}
			target, ok := doctidy.ResolveHref(f.RelPath, href)
			if !ok {
				broken = append(broken, BrokenLink{File: f.RelPath, Href: href})
				continue
			}
			if _, err := os.Stat(c.Repo.Abs(target)); err != nil {
				broken = append(broken, BrokenLink{File: f.RelPath, Href: href})
			}
		}
	}
	return broken, nil
}
