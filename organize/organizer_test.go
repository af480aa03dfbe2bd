package organize_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/doctidy"
	"github.com/fwojciec/doctidy/fs"
	"github.com/fwojciec/doctidy/mock"
	"github.com/fwojciec/doctidy/organize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, relPath, content string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0644))
}

func TestOrganizer_Detect(t *testing.T) {
	t.Parallel()

	scanner := &mock.Scanner{
		ScanFn: func(_ context.Context, pattern string) ([]doctidy.CandidateFile, error) {
			assert.Equal(t, "*.md", pattern)
			return []doctidy.CandidateFile{
				{Path: "/repo/README.md", RelPath: "README.md"},
				{Path: "/repo/NOTES.md", RelPath: "NOTES.md"},
				{Path: "/repo/docs/guide.md", RelPath: "docs/guide.md"},
				{Path: "/repo/app/TODO_LIST.md", RelPath: "app/TODO_LIST.md"},
			}, nil
		},
	}

	o := &organize.Organizer{
		Repo:    doctidy.DefaultRepo("/repo"),
		Scanner: scanner,
	}

	strays, err := o.Detect(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []doctidy.CandidateFile{
		{Path: "/repo/NOTES.md", RelPath: "NOTES.md"},
		{Path: "/repo/app/TODO_LIST.md", RelPath: "app/TODO_LIST.md"},
	}, strays)
}

func TestOrganizer_Fix(t *testing.T) {
	t.Parallel()

	t.Run("moves strays and rewrites links", func(t *testing.T) {
		t.Parallel()

		stray := doctidy.CandidateFile{Path: "/repo/NOTES.md", RelPath: "NOTES.md"}
		move := doctidy.Move{From: "NOTES.md", To: "docs/misc/NOTES.md"}

		o := &organize.Organizer{
			Repo: doctidy.DefaultRepo("/repo"),
			Scanner: &mock.Scanner{
				ScanFn: func(_ context.Context, _ string) ([]doctidy.CandidateFile, error) {
					return []doctidy.CandidateFile{stray}, nil
				},
			},
			Mover: &mock.Mover{
				MoveAllFn: func(_ context.Context, strays []doctidy.CandidateFile) ([]doctidy.Move, error) {
					assert.Equal(t, []doctidy.CandidateFile{stray}, strays)
					return []doctidy.Move{move}, nil
				},
			},
			Rewriter: &mock.Rewriter{
				RewriteFn: func(_ context.Context, moves []doctidy.Move) ([]string, error) {
					assert.Equal(t, []doctidy.Move{move}, moves)
					return []string{"README.md"}, nil
				},
			},
		}

		report, err := o.Fix(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []doctidy.CandidateFile{stray}, report.Strays)
		assert.Equal(t, []doctidy.Move{move}, report.Moves)
		assert.Equal(t, []string{"README.md"}, report.Updated)
	})

	t.Run("does not move or rewrite when nothing is stray", func(t *testing.T) {
		t.Parallel()

		o := &organize.Organizer{
			Repo: doctidy.DefaultRepo("/repo"),
			Scanner: &mock.Scanner{
				ScanFn: func(_ context.Context, _ string) ([]doctidy.CandidateFile, error) {
					return []doctidy.CandidateFile{
						{Path: "/repo/docs/guide.md", RelPath: "docs/guide.md"},
					}, nil
				},
			},
			Mover: &mock.Mover{
				MoveAllFn: func(_ context.Context, _ []doctidy.CandidateFile) ([]doctidy.Move, error) {
					t.Error("mover should not be called")
					return nil, nil
				},
			},
			Rewriter: &mock.Rewriter{
				RewriteFn: func(_ context.Context, _ []doctidy.Move) ([]string, error) {
					t.Error("rewriter should not be called")
					return nil, nil
				},
			},
		}

		report, err := o.Fix(context.Background())

		require.NoError(t, err)
		assert.Empty(t, report.Strays)
		assert.Empty(t, report.Moves)
		assert.Empty(t, report.Updated)
	})

	t.Run("a move conflict aborts before any rewrite", func(t *testing.T) {
		t.Parallel()

		conflict := doctidy.Errorf(doctidy.ECONFLICT, "refusing to overwrite existing file")

		o := &organize.Organizer{
			Repo: doctidy.DefaultRepo("/repo"),
			Scanner: &mock.Scanner{
				ScanFn: func(_ context.Context, _ string) ([]doctidy.CandidateFile, error) {
					return []doctidy.CandidateFile{
						{Path: "/repo/NOTES.md", RelPath: "NOTES.md"},
					}, nil
				},
			},
			Mover: &mock.Mover{
				MoveAllFn: func(_ context.Context, _ []doctidy.CandidateFile) ([]doctidy.Move, error) {
					return nil, conflict
				},
			},
			Rewriter: &mock.Rewriter{
				RewriteFn: func(_ context.Context, _ []doctidy.Move) ([]string, error) {
					t.Error("rewriter should not be called after a move failure")
					return nil, nil
				},
			},
		}

		_, err := o.Fix(context.Background())

		require.Error(t, err)
		assert.Equal(t, doctidy.ECONFLICT, doctidy.ErrorCode(err))
	})
}

func TestOrganizer_Verify(t *testing.T) {
	t.Parallel()

	t.Run("passes on a converged tree", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "README.md", "readme")
		writeFile(t, root, "docs/guide.md", "guide")

		repo := doctidy.DefaultRepo(root)
		o := &organize.Organizer{Repo: repo, Scanner: fs.NewScanner(repo)}

		assert.NoError(t, o.Verify(context.Background()))
	})

	t.Run("fails when strays survive a fix attempt", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "app/LEFTOVER.md", "leftover")

		repo := doctidy.DefaultRepo(root)
		o := &organize.Organizer{Repo: repo, Scanner: fs.NewScanner(repo)}

		err := o.Verify(context.Background())

		require.Error(t, err)
		assert.Equal(t, doctidy.EUNPROCESSABLE, doctidy.ErrorCode(err))
		assert.Contains(t, doctidy.ErrorMessage(err), "still outside docs/")
		assert.Contains(t, doctidy.ErrorMessage(err), "app/LEFTOVER.md")
	})
}

func TestOrganizer_CheckDocsRoot(t *testing.T) {
	t.Parallel()

	t.Run("index file and subdirectories are fine", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "docs/README.md", "index")
		writeFile(t, root, "docs/api/auth.md", "auth")

		repo := doctidy.DefaultRepo(root)
		o := &organize.Organizer{Repo: repo, Scanner: fs.NewScanner(repo)}

		assert.NoError(t, o.CheckDocsRoot(context.Background()))
	})

	t.Run("missing docs directory is fine", func(t *testing.T) {
		t.Parallel()

		repo := doctidy.DefaultRepo(t.TempDir())
		o := &organize.Organizer{Repo: repo, Scanner: fs.NewScanner(repo)}

		assert.NoError(t, o.CheckDocsRoot(context.Background()))
	})

	t.Run("any other top-level markdown file is fatal", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "docs/README.md", "index")
		writeFile(t, root, "docs/STRAY_NOTES.md", "stray")

		repo := doctidy.DefaultRepo(root)
		o := &organize.Organizer{Repo: repo, Scanner: fs.NewScanner(repo)}

		err := o.CheckDocsRoot(context.Background())

		require.Error(t, err)
		assert.Equal(t, doctidy.EUNPROCESSABLE, doctidy.ErrorCode(err))
		assert.Contains(t, doctidy.ErrorMessage(err), "docs/STRAY_NOTES.md")
	})
}
