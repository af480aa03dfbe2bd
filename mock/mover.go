package mock

import (
	"context"

	"github.com/fwojciec/doctidy"
)

var _ doctidy.Mover = (*Mover)(nil)

// Mover is a mock implementation of doctidy.Mover.
type Mover struct {
	MoveAllFn func(ctx context.Context, strays []doctidy.CandidateFile) ([]doctidy.Move, error)
}

func (m *Mover) MoveAll(ctx context.Context, strays []doctidy.CandidateFile) ([]doctidy.Move, error) {
	return m.MoveAllFn(ctx, strays)
}
