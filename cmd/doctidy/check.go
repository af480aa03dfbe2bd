package main

import (
	"fmt"

	"github.com/fwojciec/doctidy"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	broken, err := deps.Checker.Check(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doctidy.ErrorMessage(err))
		return err
	}

	if len(broken) == 0 {
		fmt.Fprintln(deps.Stdout, "Markdown link check passed.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, "Broken Markdown links found:")
	for _, b := range broken {
		fmt.Fprintf(deps.Stdout, " - %s -> %s\n", b.File, b.Href)
	}
	fmt.Fprintln(deps.Stdout, "\nFix or remove the broken links above.")
	return doctidy.Errorf(doctidy.EUNPROCESSABLE, "found %d broken Markdown link(s)", len(broken))
}
