package engine

import (
	"errors"

	"github.com/boolmat/cnotbfs/internal/bfs"
)

var (
	// ErrConfig classifies a configuration error: malformed config file,
	// out-of-range N, or a mutually-exclusive flag combination. main exits
	// 1 on this class, as on every error.
	ErrConfig = errors.New("engine: configuration error")

	// ErrGoalFile classifies a goal-matrix input error. main exits 1 on
	// this class, as on every error.
	ErrGoalFile = errors.New("engine: goal file error")

	// ErrCapacity and ErrInvariant re-export internal/bfs's sentinels so
	// callers of Engine need only import this package to classify every
	// engine failure with errors.Is, without reaching into internal/bfs
	// directly.
	ErrCapacity  = bfs.ErrCapacity
	ErrInvariant = bfs.ErrInvariant
)
