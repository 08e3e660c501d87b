package trace

import "github.com/boolmat/cnotbfs/internal/bitmatrix"

// Gate is one CNOT: row Target ^= row Control. It is its own inverse.
type Gate struct {
	Control int
	Target  int
}

// Trace is an ordered sequence of gates, applied left to right.
type Trace []Gate

func permuteTrace(pi bitmatrix.Perm, tr Trace) Trace {
	out := make(Trace, len(tr))
	for i, g := range tr {
		out[i] = Gate{Control: int(pi[g.Control]), Target: int(pi[g.Target])}
	}

	return out
}

// Apply replays tr against m in order, returning the resulting matrix.
func Apply(m bitmatrix.Matrix, tr Trace, n int) bitmatrix.Matrix {
	for _, g := range tr {
		m = bitmatrix.RowXORInto(m, g.Control, g.Target, n)
	}

	return m
}
