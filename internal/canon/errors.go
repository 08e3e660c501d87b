package canon

import "errors"

var (
	// ErrNotEquivalent is returned by EquivPerm when the two supplied
	// matrices do not in fact belong to the same orbit.
	ErrNotEquivalent = errors.New("canon: matrices are not equivalent")

	// ErrBlockShapeAssumption is returned by the swap-regime graph backend
	// when a canonical labeling fails to keep the row-vertices and
	// column-vertices of the bipartite encoding on separate sides, which
	// would indicate a GraphOracle that doesn't respect the seeded
	// bipartition.
	ErrBlockShapeAssumption = errors.New("canon: graph oracle violated the bipartite block-shape assumption")
)
