package trace

import (
	"github.com/boolmat/cnotbfs/internal/bitmatrix"
	"github.com/boolmat/cnotbfs/internal/canon"
	"github.com/boolmat/cnotbfs/pkg/lockfreeset"
)

// Result is a reconstructed circuit. Applying Gates in order to the caller's
// actual start matrix reaches some matrix M; Permute2(M, RowPerm, ColPerm)
// equals the caller's actual goal. Under the non-swap regime RowPerm and
// ColPerm are always the identity permutation, i.e. M already equals goal.
type Result struct {
	Gates   Trace
	RowPerm bitmatrix.Perm
	ColPerm bitmatrix.Perm
}

// Middle reconstructs the full start-to-goal circuit from a bidirectional
// search's witness ("middle"): it traces back from middle through both the
// forward and backward level arrays, reverses the forward half (so the
// concatenation runs start-side to goal-side instead of middle outward), and
// remaps the result from the search's internal canonical representatives
// onto the caller's actual start and goal matrices.
func Middle(start, middle, goal bitmatrix.Matrix, fwdLevels, bwdLevels []*lockfreeset.Set, fdepth, bdepth int, c canon.Canonicalizer, swap bool, n int) (Result, error) {
	startFound, fwdTrace, err := TraceBack(middle, fwdLevels, fdepth, c, n)
	if err != nil {
		return Result{}, err
	}

	goalFound, bwdTrace, err := TraceBack(middle, bwdLevels, bdepth, c, n)
	if err != nil {
		return Result{}, err
	}

	full := make(Trace, 0, len(fwdTrace)+len(bwdTrace))
	for i := len(fwdTrace) - 1; i >= 0; i-- {
		full = append(full, fwdTrace[i])
	}

	full = append(full, bwdTrace...)

	if !swap {
		// Under a single simultaneous row/column permutation, the
		// identity matrix's orbit contains only itself, so startFound
		// is always bit-equal to start (the orbit of a permutation
		// matrix other than identity never includes identity). Only
		// the goal side needs reconciling.
		pi, _, err := c.EquivPerm(goal, goalFound)
		if err != nil {
			return Result{}, err
		}

		return Result{
			Gates:   permuteTrace(pi, full),
			RowPerm: bitmatrix.Identity(n),
			ColPerm: bitmatrix.Identity(n),
		}, nil
	}

	// Under independent row/column permutations the identity's orbit is
	// every permutation matrix, so startFound generally differs from
	// start too: both ends need reconciling, and because a row
	// permutation and a column permutation move independently, no single
	// permutation can carry the whole reconstructed trace onto goal
	// exactly — the gates are remapped by the row side alone (row-XOR
	// only ever touches rows), and the leftover row/column mismatch is
	// reported as RowPerm/ColPerm for the caller to apply to the
	// resulting matrix.
	pi1, pi2, err := c.EquivPerm(start, startFound)
	if err != nil {
		return Result{}, err
	}

	pi3, pi4, err := c.EquivPerm(goalFound, goal)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Gates:   permuteTrace(pi1, full),
		RowPerm: bitmatrix.Compose(pi1, pi3, n),
		ColPerm: bitmatrix.Compose(pi2, pi4, n),
	}, nil
}
