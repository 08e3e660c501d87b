package bfs

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/boolmat/cnotbfs/internal/bitmatrix"
	"github.com/boolmat/cnotbfs/internal/canon"
	"github.com/boolmat/cnotbfs/pkg/lockfreeset"
)

// Expander applies every legal CNOT row-addition to every matrix of one BFS
// level, in parallel, and writes newly discovered canonical representatives
// into the next frontier — deduplicated against both the previous and the
// current one.
type Expander struct {
	cfg      Config
	canon    canon.Canonicalizer
	poly     *PolyAccumulator
	reporter Reporter
	start    time.Time
	lifebeat []time.Time
}

// NewExpander builds an Expander. start is the process-wide BFS start time
// used for heartbeat and report timestamps (an explicit value here, rather
// than the process-global clock the original keeps).
func NewExpander(cfg Config, c canon.Canonicalizer, poly *PolyAccumulator, reporter Reporter, start time.Time) *Expander {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	lifebeat := make([]time.Time, workers)
	for i := range lifebeat {
		lifebeat[i] = start
	}

	return &Expander{cfg: cfg, canon: c, poly: poly, reporter: reporter, start: start, lifebeat: lifebeat}
}

// Expand runs one level of frontier expansion: for every x in current and
// every ordered pair (i,j) with i != j, the row-addition rewrite is applied,
// the result canonicalized, and — unless it already belongs to prev or
// current — inserted into next. It returns the level's distinct-orbit count
// and total matrix count (the sum of orbit sizes over newly inserted
// representatives).
func (e *Expander) Expand(ctx context.Context, prev, current, next *lockfreeset.Set, depth int) (orbitCount, matrixCount uint64, err error) {
	workers := e.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	buckets := current.Buckets()
	if uint64(workers) > buckets {
		workers = int(buckets)
	}

	if workers < 1 {
		workers = 1
	}

	chunk := buckets / uint64(workers)
	if chunk == 0 {
		chunk = 1
	}

	var level, count atomic.Uint64

	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		w := w
		wStart := uint64(w) * chunk
		wEnd := wStart + chunk

		if w == workers-1 {
			wEnd = buckets
		}

		if wStart >= buckets {
			break
		}

		g.Go(func() error {
			return e.expandRange(gctx, prev, current, next, depth, w, wStart, wEnd, &level, &count)
		})
	}

	if werr := g.Wait(); werr != nil {
		return 0, 0, classifyError(werr)
	}

	return count.Load(), level.Load(), nil
}

func (e *Expander) expandRange(
	ctx context.Context,
	prev, current, next *lockfreeset.Set,
	depth, worker int,
	from, to uint64,
	level, count *atomic.Uint64,
) error {
	n := e.cfg.N

	var locLevel, locCount uint64

	for idx := from; idx < to; idx++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		key := current.Get(idx)
		if key == 0 {
			continue
		}

		x := bitmatrix.Matrix(key)

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}

				if err := e.addSuccessor(x, i, j, prev, current, next, depth, &locLevel, &locCount); err != nil {
					return err
				}
			}
		}

		e.maybeBeat(worker, locLevel, locCount)
	}

	if locLevel > 0 {
		level.Add(locLevel)
		count.Add(locCount)
	}

	return nil
}

// addSuccessor applies the (i,j) CNOT rewrite to x, canonicalizes the
// result, and inserts it into next unless it is already present in prev or
// current, mirroring the original's Add.
func (e *Expander) addSuccessor(
	x bitmatrix.Matrix, i, j int,
	prev, current, next *lockfreeset.Set,
	depth int,
	locLevel, locCount *uint64,
) error {
	n := e.cfg.N

	y := bitmatrix.RowXORInto(x, i, j, n)

	rep, orbitSize, err := e.canon.Canonicalize(y)
	if err != nil {
		return err
	}

	if _, ok, err := prev.Contains(uint64(rep)); err != nil {
		return err
	} else if ok {
		return nil
	}

	if _, ok, err := current.Contains(uint64(rep)); err != nil {
		return err
	} else if ok {
		return nil
	}

	isNew, err := next.Insert(uint64(rep))
	if err != nil {
		return err
	}

	if !isNew {
		return nil
	}

	*locLevel += orbitSize
	*locCount++

	if e.cfg.Poly && e.poly != nil && MiddleDepth(n, depth) {
		e.poly.Add(rep, orbitSize)
	}

	return nil
}

func (e *Expander) maybeBeat(worker int, level, count uint64) {
	if e.cfg.Beat <= 0 || e.reporter == nil {
		return
	}

	now := time.Now()
	if now.Sub(e.lifebeat[worker]) < e.cfg.Beat {
		return
	}

	e.lifebeat[worker] = now
	e.reporter.Printf("...Worker %d (%ds) (%d elts) (%d orbits)\n", worker, int(now.Sub(e.start).Seconds()), level, count)
}

// classifyError wraps an error surfaced from a frontier expansion into the
// package's error taxonomy: a lockfreeset capacity failure becomes
// ErrCapacity, anything else (canonicalizer failures such as
// canon.ErrBlockShapeAssumption) becomes ErrInvariant.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	if isCapacityError(err) {
		return fmt.Errorf("%w: %v", ErrCapacity, err)
	}

	return fmt.Errorf("%w: %v", ErrInvariant, err)
}

func isCapacityError(err error) bool {
	return errors.Is(err, lockfreeset.ErrFull)
}
