package bfs

import (
	"time"

	"github.com/boolmat/cnotbfs/pkg/lockfreeset"
)

// Reporter receives progress and heartbeat lines. internal/cli's IO type
// satisfies it; tests may pass a no-op.
type Reporter interface {
	Printf(format string, a ...any)
}

// Config holds the per-run knobs that in the original were compile-time
// constants (N, E, MAX, SWAP, NAUTY, POLY, BEAT): they become fields of an
// immutable value passed to NewExpander/NewController instead of process-
// wide globals.
type Config struct {
	N int

	// Swap enables the independent row/column permutation regime.
	Swap bool

	// Poly enables the middle-depth polynomial accumulator. Invalid
	// together with Swap (checked by internal/engine at config-validation
	// time, not here).
	Poly bool

	// Extra is the table-scale margin (E) added to each level's
	// levelSizes hint.
	Extra int

	// Max clamps any computed table scale (MAX).
	Max uint

	// Beat is the per-worker heartbeat interval; 0 disables it.
	Beat time.Duration

	// Workers bounds the degree of parallelism; <=0 selects
	// runtime.GOMAXPROCS(0).
	Workers int

	// Probe selects the hash set's probe strategy for every frontier this
	// Controller allocates.
	Probe lockfreeset.ProbeStrategy

	// Hasher overrides the hash set's hash function; nil keeps the
	// default (XXHasher).
	Hasher lockfreeset.Hasher
}

func (cfg Config) newFrontier(scale uint) (*lockfreeset.Set, error) {
	opts := []lockfreeset.Option{lockfreeset.WithProbeStrategy(cfg.Probe)}
	if cfg.Hasher != nil {
		opts = append(opts, lockfreeset.WithHasher(cfg.Hasher))
	}

	return lockfreeset.New(scale, opts...)
}

func (cfg Config) workerCount() int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}

	return 0 // resolved to runtime.GOMAXPROCS(0) by callers
}
