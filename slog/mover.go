// Package slog provides logging decorators for doctidy interfaces. Each
// decorator wraps an implementation, logs the operation, and delegates.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doctidy"
)

// Ensure LoggingMover implements doctidy.Mover.
var _ doctidy.Mover = (*LoggingMover)(nil)

// LoggingMover wraps a Mover with per-run move logging.
type LoggingMover struct {
	next   doctidy.Mover
	logger *slog.Logger
}

// NewLoggingMover creates a new LoggingMover.
func NewLoggingMover(next doctidy.Mover, logger *slog.Logger) *LoggingMover {
	return &LoggingMover{next: next, logger: logger}
}

// MoveAll delegates to the wrapped mover and logs each recorded move.
func (m *LoggingMover) MoveAll(ctx context.Context, strays []doctidy.CandidateFile) ([]doctidy.Move, error) {
	begin := time.Now()
	moves, err := m.next.MoveAll(ctx, strays)
	for _, mv := range moves {
		m.logger.Info("moved file", "from", mv.From, "to", mv.To)
	}
	if err != nil {
		m.logger.Error("move run failed",
			"completed", len(moves),
			"total", len(strays),
			"error", doctidy.ErrorMessage(err),
		)
	}
	m.logger.Info("move run finished",
		"moves", len(moves),
		"duration", time.Since(begin),
	)
	return moves, err
}
