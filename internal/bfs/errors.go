package bfs

import "errors"

var (
	// ErrCapacity indicates a frontier's probe sequence exhausted the
	// table before finding an empty slot or the key — the levelSizes hint
	// for this depth (plus the configured extra margin) was too small.
	// Callers must re-run with a larger Extra or Max, not retry in place.
	ErrCapacity = errors.New("bfs: frontier table exhausted, levelSizes hint too small for this depth")

	// ErrInvariant indicates a structural assumption of the search was
	// violated: a canonicalizer error propagated up from a frontier
	// expansion.
	ErrInvariant = errors.New("bfs: invariant violation")
)
