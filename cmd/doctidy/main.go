package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/doctidy"
	"github.com/fwojciec/doctidy/check"
	"github.com/fwojciec/doctidy/classify"
	"github.com/fwojciec/doctidy/fs"
	"github.com/fwojciec/doctidy/organize"
	dslog "github.com/fwojciec/doctidy/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Repository root. Discovered from the working directory when empty;
	// set before calling Run() to override (tests do this).
	Root string

	// Repo configuration for end-to-end testing.
	Repo *doctidy.Repo
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Root: os.Getenv("DOCTIDY_ROOT")}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("doctidy"),
		kong.Description("Keep the documentation tree organized and its links intact."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'doctidy --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.Root == "" {
		root, err := discoverRoot()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: set DOCTIDY_ROOT or run inside a git repository")
			return err
		}
		m.Root = root
	}
	m.Repo = doctidy.DefaultRepo(m.Root)

	table, err := classify.NewTable()
	if err != nil {
		return err
	}

	scanner := fs.NewScanner(m.Repo)
	var mover doctidy.Mover = fs.NewMover(m.Repo, table)
	var rewriter doctidy.LinkRewriter = fs.NewRewriter(m.Repo, scanner)

	if cli.Organize.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		mover = dslog.NewLoggingMover(mover, logger)
		rewriter = dslog.NewLoggingRewriter(rewriter, logger)
	}

	deps.Repo = m.Repo
	deps.Organizer = &organize.Organizer{
		Repo:     m.Repo,
		Scanner:  scanner,
		Mover:    mover,
		Rewriter: rewriter,
	}
	deps.Checker = &check.Checker{
		Repo:    m.Repo,
		Scanner: scanner,
	}

	return kongCtx.Run(deps)
}

// discoverRoot walks upward from the working directory to the nearest
// ancestor containing a .git directory.
func discoverRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", doctidy.Errorf(doctidy.ENOTFOUND, "no repository root found above %q", cwd)
		}
		dir = parent
	}
}
