package fs

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/doctidy"
)

// Ensure Mover implements doctidy.Mover at compile time.
var _ doctidy.Mover = (*Mover)(nil)

// Mover relocates stray documentation files into their classified
// destinations.
type Mover struct {
	repo       *doctidy.Repo
	classifier doctidy.Classifier
}

// NewMover creates a new Mover using the given classifier for destinations.
func NewMover(repo *doctidy.Repo, classifier doctidy.Classifier) *Mover {
	return &Mover{repo: repo, classifier: classifier}
}

// MoveAll relocates each stray file and records the moves. A file already
// present at a computed destination fails the whole call with ECONFLICT:
// silently choosing between two documents is unsafe. Moves completed before
// the failure stay in place and are returned alongside the error so the
// operator can reconcile manually.
func (m *Mover) MoveAll(ctx context.Context, strays []doctidy.CandidateFile) ([]doctidy.Move, error) {
	moves := make([]doctidy.Move, 0, len(strays))
	for _, stray := range strays {
		if err := ctx.Err(); err != nil {
			return moves, err
		}

		base := filepath.Base(stray.Path)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		destDir := m.classifier.Classify(stem)

		if err := os.MkdirAll(m.repo.Abs(destDir), 0755); err != nil {
			return moves, doctidy.Errorf(doctidy.EINTERNAL, "create directory %q: %s", destDir, err)
		}

		destRel := path.Join(destDir, base)
		destAbs := m.repo.Abs(destRel)
		if _, err := os.Stat(destAbs); err == nil {
			return moves, doctidy.Errorf(doctidy.ECONFLICT,
				"refusing to overwrite existing file %q (%d of %d moves completed); resolve the conflict and rerun",
				destRel, len(moves), len(strays))
		} else if !os.IsNotExist(err) {
			return moves, doctidy.Errorf(doctidy.EINTERNAL, "stat %q: %s", destRel, err)
		}

		if err := os.Rename(stray.Path, destAbs); err != nil {
			return moves, doctidy.Errorf(doctidy.EINTERNAL, "move %q to %q: %s", stray.RelPath, destRel, err)
		}
		moves = append(moves, doctidy.Move{From: stray.RelPath, To: destRel})
	}
	return moves, nil
}
