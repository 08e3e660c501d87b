package canon

import "github.com/boolmat/cnotbfs/internal/bitmatrix"

// Config selects a canonicalizer backend and regime.
type Config struct {
	N int

	// Swap enables the independent row/column permutation regime ("free
	// SWAP gates"). Forces the graph backend.
	Swap bool

	// Nauty requests the graph backend even when Swap is false, so its
	// results can be cross-checked against the fingerprint backend.
	Nauty bool

	// Oracle overrides the graph backend's canonical-labeling engine.
	// Nil selects the built-in equitable-refinement search.
	Oracle GraphOracle
}

// Canonicalizer maps matrices to canonical representatives within their
// equivalence class. Implementations are safe for concurrent use: they
// hold no mutable state beyond their fixed dimension and configuration.
type Canonicalizer interface {
	// Canonicalize returns the lexicographically smallest matrix
	// equivalent to m, and the size of its orbit. Under the graph
	// backend's swap regime, err is ErrBlockShapeAssumption if the
	// oracle's labeling violated the bipartite block-shape invariant.
	Canonicalize(m bitmatrix.Matrix) (rep bitmatrix.Matrix, orbitSize uint64, err error)

	// RepresentativePerm additionally returns the permutation(s) that
	// carry m to its representative: rep = Permute(m, rowPerm) when
	// rowPerm == colPerm (non-swap), or Permute2(m, rowPerm, colPerm)
	// under swap.
	RepresentativePerm(m bitmatrix.Matrix) (rep bitmatrix.Matrix, rowPerm, colPerm bitmatrix.Perm, err error)

	// EquivPerm computes a permutation pair taking m1 to m2, given that
	// both belong to the same orbit. Returns ErrNotEquivalent if they
	// don't.
	EquivPerm(m1, m2 bitmatrix.Matrix) (rowPerm, colPerm bitmatrix.Perm, err error)
}

// New builds the Canonicalizer selected by cfg. A non-swap, non-nauty
// config gets the fingerprint backend; everything else gets the graph
// backend (mandatory under Swap).
func New(cfg Config) (Canonicalizer, error) {
	if !cfg.Swap && !cfg.Nauty {
		return newFingerprintCanon(cfg.N), nil
	}

	return newGraphCanon(cfg.N, cfg.Swap, cfg.Oracle), nil
}
