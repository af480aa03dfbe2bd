package mock

import (
	"context"

	"github.com/fwojciec/doctidy"
)

var _ doctidy.Scanner = (*Scanner)(nil)

// Scanner is a mock implementation of doctidy.Scanner.
type Scanner struct {
	ScanFn func(ctx context.Context, pattern string) ([]doctidy.CandidateFile, error)
}

func (s *Scanner) Scan(ctx context.Context, pattern string) ([]doctidy.CandidateFile, error) {
	return s.ScanFn(ctx, pattern)
}
