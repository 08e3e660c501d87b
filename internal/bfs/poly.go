package bfs

import (
	"sync/atomic"

	"github.com/boolmat/cnotbfs/internal/bitmatrix"
)

// PolyAccumulator collects the coefficients of the "middle depth" essential-
// index polynomial (SWAP=0 only): N+1 atomic counters, one per possible
// essential-index count, accumulated across every newly discovered orbit at
// the depth where 2*(depth-1) == N.
type PolyAccumulator struct {
	n    int
	coef []atomic.Uint64 // length n+1
}

// NewPolyAccumulator allocates an accumulator for dimension n.
func NewPolyAccumulator(n int) *PolyAccumulator {
	return &PolyAccumulator{n: n, coef: make([]atomic.Uint64, n+1)}
}

// MiddleDepth reports whether depth is the accumulation point for dimension
// n: 2*(depth-1) == n.
func MiddleDepth(n, depth int) bool {
	return 2*(depth-1) == n
}

// Add records a newly discovered orbit representative y of the given
// orbitSize at the middle depth: essential_count(y) is computed and
// orbitSize*(essential!*(N-essential)!)/N! is added to coef[N-essential].
func (p *PolyAccumulator) Add(y bitmatrix.Matrix, orbitSize uint64) {
	ess := bitmatrix.CountEssential(y, p.n)

	weight := orbitSize * (bitmatrix.Factorial[ess] * bitmatrix.Factorial[p.n-ess]) / bitmatrix.Factorial[p.n]

	p.coef[p.n-ess].Add(weight)
}

// Coefficients returns a snapshot of the current coefficient vector, index i
// holding the accumulated weight for i essential indices absent (i.e.
// coef[N-essential]).
func (p *PolyAccumulator) Coefficients() []uint64 {
	out := make([]uint64, len(p.coef))
	for i := range out {
		out[i] = p.coef[i].Load()
	}

	return out
}
