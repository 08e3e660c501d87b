package bfs

import (
	"context"
	"time"

	"github.com/boolmat/cnotbfs/internal/bitmatrix"
	"github.com/boolmat/cnotbfs/internal/canon"
	"github.com/boolmat/cnotbfs/pkg/lockfreeset"
)

// Result reports a unidirectional forward run's outcome.
type Result struct {
	// Found is true iff a goal matrix was configured and reached.
	Found bool

	// LimitReached is true iff the search stopped because it hit the
	// caller's depth limit before Found or exhaustion.
	LimitReached bool

	// Depth is the BFS depth at which the search stopped: the depth a
	// goal was found at, the depth the limit was hit at, or the last
	// depth with a nonempty frontier if the space was exhausted. Depths
	// count the start level as 1, so Depth is one more than the CNOT
	// distance.
	Depth int

	MatrixTotal uint64
	OrbitTotal  uint64
}

// BidirResult reports a bidirectional run's outcome.
type BidirResult struct {
	Found         bool
	LimitReached  bool
	Witness       bitmatrix.Matrix
	ForwardDepth  int
	BackwardDepth int
	MatrixTotal   uint64
	OrbitTotal    uint64
}

// Controller drives Expander level by level: forward-only (enumerating the
// whole reachable space, optionally stopping early at a goal) or
// bidirectionally from both the identity and a goal, stopping at the first
// frontier intersection. It owns the frontier arrays, start clock, and
// counters that the original kept as process-wide globals.
type Controller struct {
	cfg      Config
	canon    canon.Canonicalizer
	expander *Expander
	reporter Reporter
	start    time.Time
}

// NewController builds a Controller. poly may be nil (no polynomial
// accumulation); reporter may be nil (no progress output).
func NewController(cfg Config, c canon.Canonicalizer, poly *PolyAccumulator, reporter Reporter) *Controller {
	start := time.Now()

	return &Controller{
		cfg:      cfg,
		canon:    c,
		expander: NewExpander(cfg, c, poly, reporter, start),
		reporter: reporter,
		start:    start,
	}
}

func (c *Controller) report(depth int, scale uint, level, orbit uint64) {
	if c.reporter == nil {
		return
	}

	c.reporter.Printf("Depth %d (2^%d): (%ds) (%d elts) (%d orbits)\n",
		depth, scale, int(time.Since(c.start).Seconds()), level, orbit)
}

// initLevel builds the depth-0 and depth-1 frontiers: an empty placeholder
// and a singleton containing canon(start). It returns the orbit size of
// start (the depth-1 level's matrix count).
func (c *Controller) initLevel(start bitmatrix.Matrix) (levels []*lockfreeset.Set, matrixCount uint64, err error) {
	prev, err := c.cfg.newFrontier(lockfreeset.MinScale)
	if err != nil {
		return nil, 0, err
	}

	cur, err := c.cfg.newFrontier(lockfreeset.MinScale)
	if err != nil {
		return nil, 0, err
	}

	rep, orbitSize, err := c.canon.Canonicalize(start)
	if err != nil {
		return nil, 0, classifyError(err)
	}

	if _, err := cur.Insert(uint64(rep)); err != nil {
		return nil, 0, classifyError(err)
	}

	return []*lockfreeset.Set{prev, cur}, orbitSize, nil
}

// RunForward enumerates the BFS forward from start, optionally stopping as
// soon as a goal matrix's canonical representative is reached, or at a
// caller-supplied depth limit (-1 for unbounded). It returns every
// allocated frontier level (retired levels are left as nil when no goal is
// set, matching the original's early-free of no-longer-needed levels).
func (c *Controller) RunForward(ctx context.Context, start bitmatrix.Matrix, goal *bitmatrix.Matrix, limit int) ([]*lockfreeset.Set, Result, error) {
	n := c.cfg.N

	levels, matrixCount, err := c.initLevel(start)
	if err != nil {
		return nil, Result{}, err
	}

	depth := 1
	scale := uint(lockfreeset.MinScale)
	orbitCount := uint64(1)
	matrixTotal := matrixCount
	orbitTotal := orbitCount

	var goalRep bitmatrix.Matrix

	if goal != nil {
		rep, _, err := c.canon.Canonicalize(*goal)
		if err != nil {
			return levels, Result{}, classifyError(err)
		}

		goalRep = rep
	}

	for orbitCount != 0 {
		c.report(depth-1, scale, matrixCount, orbitCount)

		if goal != nil {
			if _, ok, err := levels[depth].Contains(uint64(goalRep)); err != nil {
				return levels, Result{}, classifyError(err)
			} else if ok {
				return levels, Result{Found: true, Depth: depth, MatrixTotal: matrixTotal, OrbitTotal: orbitTotal}, nil
			}
		} else if depth > 1 {
			_ = levels[depth-2].Close()
			levels[depth-2] = nil
		}

		if depth-1 == limit {
			return levels, Result{LimitReached: true, Depth: depth, MatrixTotal: matrixTotal, OrbitTotal: orbitTotal}, nil
		}

		depth++
		scale = levelScale(n, c.cfg.Swap, depth, c.cfg.Extra, lockfreeset.MinScale, c.cfg.Max)

		next, err := c.cfg.newFrontier(scale)
		if err != nil {
			return levels, Result{}, err
		}

		levels = append(levels, next)

		orbitCount, matrixCount, err = c.expander.Expand(ctx, levels[depth-2], levels[depth-1], next, depth)
		if err != nil {
			return levels, Result{}, err
		}

		matrixTotal += matrixCount
		orbitTotal += orbitCount
	}

	return levels, Result{Depth: depth - 1, MatrixTotal: matrixTotal, OrbitTotal: orbitTotal}, nil
}

// intersect scans the smaller of the two frontiers for a member of the
// other, returning the first witness found (0 if none).
func intersect(small, large *lockfreeset.Set) (bitmatrix.Matrix, error) {
	var witness bitmatrix.Matrix

	var scanErr error

	small.ForAll(func(key uint64) {
		if witness != 0 || scanErr != nil {
			return
		}

		if _, ok, err := large.Contains(key); err != nil {
			scanErr = err
		} else if ok {
			witness = bitmatrix.Matrix(key)
		}
	})

	if scanErr != nil {
		return 0, classifyError(scanErr)
	}

	return witness, nil
}

// RunBidirectional searches simultaneously from start and goal, alternately
// expanding whichever side has the smaller current orbit count (ties favor
// forward), stopping at the first frontier intersection or when combined
// depth reaches 3*(N-1) or the caller's limit.
func (c *Controller) RunBidirectional(ctx context.Context, start, goal bitmatrix.Matrix, limit int) (fwd, bwd []*lockfreeset.Set, result BidirResult, err error) {
	n := c.cfg.N

	fwd, fwdMatrix, err := c.initLevel(start)
	if err != nil {
		return nil, nil, BidirResult{}, err
	}

	bwd, bwdMatrix, err := c.initLevel(goal)
	if err != nil {
		return fwd, nil, BidirResult{}, err
	}

	fdepth, bdepth := 1, 1
	forbit, borbit := uint64(1), uint64(1)
	matrixTotal := fwdMatrix + bwdMatrix
	orbitTotal := uint64(2)

	c.report(fdepth-1, lockfreeset.MinScale, fwdMatrix, forbit)
	c.report(bdepth-1, lockfreeset.MinScale, bwdMatrix, borbit)

	witness, err := intersect(fwd[fdepth], bwd[bdepth])
	if err != nil {
		return fwd, bwd, BidirResult{}, err
	}

	if witness != 0 {
		return fwd, bwd, BidirResult{Found: true, Witness: witness, ForwardDepth: fdepth, BackwardDepth: bdepth, MatrixTotal: matrixTotal, OrbitTotal: orbitTotal}, nil
	}

	for fdepth+bdepth-2 < 3*(n-1) {
		if fdepth+bdepth-2 == limit {
			return fwd, bwd, BidirResult{LimitReached: true, ForwardDepth: fdepth, BackwardDepth: bdepth, MatrixTotal: matrixTotal, OrbitTotal: orbitTotal}, nil
		}

		if forbit <= borbit {
			fdepth++
			scale := levelScale(n, c.cfg.Swap, fdepth, c.cfg.Extra, lockfreeset.MinScale, c.cfg.Max)

			next, ferr := c.cfg.newFrontier(scale)
			if ferr != nil {
				return fwd, bwd, BidirResult{}, ferr
			}

			fwd = append(fwd, next)

			var matrixDelta uint64

			forbit, matrixDelta, err = c.expander.Expand(ctx, fwd[fdepth-2], fwd[fdepth-1], next, fdepth)
			if err != nil {
				return fwd, bwd, BidirResult{}, err
			}

			matrixTotal += matrixDelta
			orbitTotal += forbit
			c.report(fdepth-1, scale, matrixDelta, forbit)
		} else {
			bdepth++
			// Sized from the forward side's hint one depth ahead
			// (the original's heuristic predictor for the backward
			// successor, which levelSizes does not otherwise cover):
			// its successor can still exceed the forward side's even
			// though its current orbit count is smaller, hence also
			// the higher floor (10, not 3).
			scale := levelScale(n, c.cfg.Swap, fdepth+1, c.cfg.Extra, 10, c.cfg.Max)

			next, berr := c.cfg.newFrontier(scale)
			if berr != nil {
				return fwd, bwd, BidirResult{}, berr
			}

			bwd = append(bwd, next)

			var matrixDelta uint64

			borbit, matrixDelta, err = c.expander.Expand(ctx, bwd[bdepth-2], bwd[bdepth-1], next, bdepth)
			if err != nil {
				return fwd, bwd, BidirResult{}, err
			}

			matrixTotal += matrixDelta
			orbitTotal += borbit
			c.report(bdepth-1, scale, matrixDelta, borbit)
		}

		small, large := fwd[fdepth], bwd[bdepth]
		if borbit < forbit {
			small, large = large, small
		}

		witness, err = intersect(small, large)
		if err != nil {
			return fwd, bwd, BidirResult{}, err
		}

		if witness != 0 {
			return fwd, bwd, BidirResult{Found: true, Witness: witness, ForwardDepth: fdepth, BackwardDepth: bdepth, MatrixTotal: matrixTotal, OrbitTotal: orbitTotal}, nil
		}
	}

	return fwd, bwd, BidirResult{ForwardDepth: fdepth, BackwardDepth: bdepth, MatrixTotal: matrixTotal, OrbitTotal: orbitTotal}, nil
}
