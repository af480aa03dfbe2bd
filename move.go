package doctidy

import "context"

// Move records the relocation of one file. Paths are root-relative, slash
// separated, and the record is immutable once created: it is the
// authoritative input the link rewriter consumes.
type Move struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Scanner enumerates candidate files under the repository root.
type Scanner interface {
	// Scan returns every file whose base name matches pattern, excluding
	// paths inside skip directories. The order is deterministic across
	// runs on an unchanged tree (depth-first, lexical within a directory).
	Scan(ctx context.Context, pattern string) ([]CandidateFile, error)
}

// Classifier maps a bare filename stem to a destination directory.
type Classifier interface {
	// Classify returns the root-relative destination directory for a
	// filename stem. Pure and deterministic.
	Classify(stem string) string
}

// Mover relocates stray files into their classified destinations.
type Mover interface {
	// MoveAll relocates each stray file and returns the recorded moves.
	// A destination collision fails the whole call with ECONFLICT; moves
	// completed before the failure are not rolled back, and the error
	// reports how many succeeded.
	MoveAll(ctx context.Context, strays []CandidateFile) ([]Move, error)
}

// LinkRewriter updates textual references to moved files.
type LinkRewriter interface {
	// Rewrite replaces every old spelling of a moved path with the new
	// spelling, computed relative to each referencing file. It returns
	// the root-relative paths of the files whose content changed.
	Rewrite(ctx context.Context, moves []Move) ([]string, error)
}
