package mock

import (
	"context"

	"github.com/fwojciec/doctidy"
)

var _ doctidy.LinkRewriter = (*Rewriter)(nil)

// Rewriter is a mock implementation of doctidy.LinkRewriter.
type Rewriter struct {
	RewriteFn func(ctx context.Context, moves []doctidy.Move) ([]string, error)
}

func (r *Rewriter) Rewrite(ctx context.Context, moves []doctidy.Move) ([]string, error) {
	return r.RewriteFn(ctx, moves)
}
