package trace

import (
	"github.com/boolmat/cnotbfs/internal/bitmatrix"
	"github.com/boolmat/cnotbfs/internal/canon"
	"github.com/boolmat/cnotbfs/pkg/lockfreeset"
)

// StepBack finds a single-gate predecessor of y within the orbit stored in
// prev. It tries every (i,j) row-XOR undo, canonicalizes the result only to
// test membership, and returns the raw (possibly non-canonical) undone
// matrix — never the representative. Threading the raw value forward is
// what keeps a whole reconstructed trace bit-exact between its two
// endpoints; re-canonicalizing at each step would only ever recover an
// orbit-mate, not the matrix the gate sequence actually passes through.
func StepBack(y bitmatrix.Matrix, prev *lockfreeset.Set, c canon.Canonicalizer, n int) (Gate, bitmatrix.Matrix, error) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}

			cand := bitmatrix.RowXORInto(y, i, j, n)

			rep, _, err := c.Canonicalize(cand)
			if err != nil {
				return Gate{}, 0, err
			}

			if _, ok, err := prev.Contains(uint64(rep)); err != nil {
				return Gate{}, 0, err
			} else if ok {
				return Gate{Control: i, Target: j}, cand, nil
			}
		}
	}

	return Gate{}, 0, ErrNoPredecessor
}

// TraceBack walks backward from goal through levels[depth-1] down to
// levels[1], accumulating one gate per step. It returns the raw matrix value
// the walk bottoms out at (orbit-equivalent to levels[1]'s singleton
// representative, not necessarily bit-equal to it under the swap regime)
// together with the accumulated trace, ordered from goal back toward the
// start of the level array.
func TraceBack(goal bitmatrix.Matrix, levels []*lockfreeset.Set, depth int, c canon.Canonicalizer, n int) (bitmatrix.Matrix, Trace, error) {
	tr := make(Trace, 0, depth-1)
	m := goal

	for d := depth - 1; d >= 1; d-- {
		gate, prev, err := StepBack(m, levels[d], c, n)
		if err != nil {
			return 0, nil, err
		}

		tr = append(tr, gate)
		m = prev
	}

	return m, tr, nil
}
