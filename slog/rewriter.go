package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doctidy"
)

// Ensure LoggingRewriter implements doctidy.LinkRewriter.
var _ doctidy.LinkRewriter = (*LoggingRewriter)(nil)

// LoggingRewriter wraps a LinkRewriter with per-file update logging.
type LoggingRewriter struct {
	next   doctidy.LinkRewriter
	logger *slog.Logger
}

// NewLoggingRewriter creates a new LoggingRewriter.
func NewLoggingRewriter(next doctidy.LinkRewriter, logger *slog.Logger) *LoggingRewriter {
	return &LoggingRewriter{next: next, logger: logger}
}

// Rewrite delegates to the wrapped rewriter and logs each updated file.
func (r *LoggingRewriter) Rewrite(ctx context.Context, moves []doctidy.Move) ([]string, error) {
	begin := time.Now()
	updated, err := r.next.Rewrite(ctx, moves)
	for _, rel := range updated {
		r.logger.Info("updated links", "file", rel)
	}
	r.logger.Info("link rewrite finished",
		"moves", len(moves),
		"updated", len(updated),
		"duration", time.Since(begin),
	)
	return updated, err
}
