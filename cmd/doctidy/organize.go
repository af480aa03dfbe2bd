package main

import (
	"fmt"

	"github.com/fwojciec/doctidy"
)

// Run executes the organize command.
func (c *OrganizeCmd) Run(deps *Dependencies) error {
	if c.Fix {
		if err := c.fix(deps); err != nil {
			return err
		}
	} else {
		if err := c.detect(deps); err != nil {
			return err
		}
	}

	if err := deps.Organizer.CheckDocsRoot(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doctidy.ErrorMessage(err))
		return err
	}

	if c.Fix {
		if err := deps.Organizer.Verify(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", doctidy.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, "Docs verification complete.")
	return nil
}

// detect lists stray files without mutating the tree. Any stray is an error:
// the operator must re-run with --fix.
func (c *OrganizeCmd) detect(deps *Dependencies) error {
	strays, err := deps.Organizer.Detect(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doctidy.ErrorMessage(err))
		return err
	}
	if len(strays) == 0 {
		fmt.Fprintln(deps.Stdout, "No stray Markdown files found.")
		return nil
	}

	fmt.Fprintf(deps.Stderr, "Found %d Markdown file(s) outside docs/:\n", len(strays))
	for _, s := range strays {
		fmt.Fprintf(deps.Stderr, " - %s\n", s.RelPath)
	}
	fmt.Fprintln(deps.Stderr, "Re-run with --fix to move them automatically.")
	return doctidy.Errorf(doctidy.EUNPROCESSABLE, "found %d stray Markdown file(s)", len(strays))
}

func (c *OrganizeCmd) fix(deps *Dependencies) error {
	report, err := deps.Organizer.Fix(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doctidy.ErrorMessage(err))
		return err
	}
	if len(report.Strays) == 0 {
		fmt.Fprintln(deps.Stdout, "No stray Markdown files found.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Moved %d Markdown file(s) into docs/... folders\n", len(report.Moves))
	if len(report.Updated) > 0 {
		fmt.Fprintf(deps.Stdout, "Updated links in %d file(s)\n", len(report.Updated))
	}
	return nil
}
