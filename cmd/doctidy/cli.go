package main

import (
	"context"
	"io"

	"github.com/fwojciec/doctidy"
	"github.com/fwojciec/doctidy/check"
	"github.com/fwojciec/doctidy/organize"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Repo      *doctidy.Repo
	Organizer *organize.Organizer
	Checker   *check.Checker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Organize OrganizeCmd `cmd:"" help:"Move stray Markdown files into docs/ and update links"`
	Check    CheckCmd    `cmd:"" help:"Verify local Markdown links resolve to existing files"`
}

// OrganizeCmd is the "organize" subcommand.
type OrganizeCmd struct {
	Fix     bool `help:"Move stray files and update links."`
	Verbose bool `short:"v" help:"Log every move and rewritten file."`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct{}
