package canon

import (
	"bytes"
	"sort"

	"github.com/boolmat/cnotbfs/internal/bitmatrix"
)

// GraphOracle computes a canonical labeling for a directed graph on nv
// vertices, seeded with an initial color partition that any valid labeling
// must respect (colors encode structural facts the caller has already
// established, e.g. which side of a bipartition a vertex is on). It is the
// local stand-in for the external graph-canonicalization collaborator
// named in this system's external interfaces; swap in a real binding by
// implementing this interface and passing it via Config.Oracle.
type GraphOracle interface {
	// Canonicalize returns lab, where lab[newPosition] = originalVertex
	// is the canonical labeling (the relabeled graph is lexicographically
	// smallest among all labelings consistent with the seed coloring),
	// and the size of the labeling's automorphism group.
	Canonicalize(nv int, adjOut, adjIn func(u, v int) bool, seedColor []int) (lab []int, autGroupSize uint64)
}

// builtinOracle implements GraphOracle via equitable color refinement
// (iterated 1-dimensional Weisfeiler-Leman) to prune the search, followed
// by a brute-force search within the resulting color classes for the
// lexicographically smallest relabeling. Refinement only affects how much
// of the search is pruned; correctness does not depend on how fine the
// partition ends up, since the brute-force step always explores the full
// color-respecting permutation group.
type builtinOracle struct{}

func (builtinOracle) Canonicalize(nv int, adjOut, adjIn func(u, v int) bool, seedColor []int) ([]int, uint64) {
	colors := refineColors(nv, adjOut, adjIn, seedColor)
	order := sortByColor(nv, colors)
	blocks := blockLengths(order, colors)

	baseAdj := func(u, v int) bool { return adjOut(order[u], order[v]) }

	smallest := adjacencySignature(nv, baseAdj)
	winner := identitySlice(nv)

	var stabilizers uint64

	forEachBlockPerm(blocks, nv, func(pi []byte) {
		adj := func(u, v int) bool { return baseAdj(int(pi[u]), int(pi[v])) }

		sig := adjacencySignature(nv, adj)

		switch bytes.Compare(sig, smallest) {
		case 0:
			stabilizers++
		case -1:
			smallest = sig
			winner = append(winner[:0], pi...)
			stabilizers = 1
		}
	})

	lab := make([]int, nv)
	for i := 0; i < nv; i++ {
		lab[i] = order[winner[i]]
	}

	return lab, stabilizers
}

func identitySlice(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i)
	}

	return out
}

func adjacencySignature(nv int, adj func(u, v int) bool) []byte {
	sig := make([]byte, nv*nv)

	for u := 0; u < nv; u++ {
		for v := 0; v < nv; v++ {
			if adj(u, v) {
				sig[u*nv+v] = 1
			}
		}
	}

	return sig
}

// refineColors runs iterated color refinement until stable: vertices
// sharing a color must also share the sorted multiset of their neighbors'
// colors (both outgoing and incoming), or they get split into a new color.
// The seed coloring's relative order is always preserved, which is what
// keeps a bipartition seeded as two distinct initial colors from ever
// collapsing into one.
func refineColors(nv int, adjOut, adjIn func(u, v int) bool, seedColor []int) []int {
	colors := append([]int(nil), seedColor...)

	type signature struct {
		color int
		out   string
		in    string
	}

	for {
		sigs := make([]signature, nv)

		for u := 0; u < nv; u++ {
			var out, in []byte

			for v := 0; v < nv; v++ {
				if adjOut(u, v) {
					out = append(out, byte(colors[v]))
				}

				if adjIn(u, v) {
					in = append(in, byte(colors[v]))
				}
			}

			sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
			sort.Slice(in, func(i, j int) bool { return in[i] < in[j] })

			sigs[u] = signature{colors[u], string(out), string(in)}
		}

		order := make([]int, nv)
		for i := range order {
			order[i] = i
		}

		sort.SliceStable(order, func(i, j int) bool {
			a, b := sigs[order[i]], sigs[order[j]]

			switch {
			case a.color != b.color:
				return a.color < b.color
			case a.out != b.out:
				return a.out < b.out
			default:
				return a.in < b.in
			}
		})

		next := make([]int, nv)

		class := 0

		for k, u := range order {
			if k > 0 {
				prev := sigs[order[k-1]]
				cur := sigs[u]

				if prev != cur {
					class++
				}
			}

			next[u] = class
		}

		stable := true

		for u := 0; u < nv; u++ {
			if next[u] != colors[u] {
				stable = false
				break
			}
		}

		colors = next

		if stable {
			return colors
		}
	}
}

func sortByColor(nv int, colors []int) []int {
	order := make([]int, nv)
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool { return colors[order[i]] < colors[order[j]] })

	return order
}

func blockLengths(order, colors []int) []int {
	var blocks []int

	i := 0
	for i < len(order) {
		j := i + 1
		for j < len(order) && colors[order[j]] == colors[order[i]] {
			j++
		}

		blocks = append(blocks, j-i)
		i = j
	}

	return blocks
}

// graphCanon implements Canonicalizer via GraphOracle, in either the
// single-permutation (digraph) or independent-permutation (bipartite,
// swap) regime.
type graphCanon struct {
	n      int
	swap   bool
	oracle GraphOracle
}

func newGraphCanon(n int, swap bool, oracle GraphOracle) *graphCanon {
	if oracle == nil {
		oracle = builtinOracle{}
	}

	return &graphCanon{n: n, swap: swap, oracle: oracle}
}

func (c *graphCanon) digraphLabel(x bitmatrix.Matrix) ([]int, uint64) {
	n := c.n

	seed := make([]int, n)
	for i := 0; i < n; i++ {
		if bitmatrix.Bit(x, i, i, n) {
			seed[i] = 1
		}
	}

	adjOut := func(u, v int) bool { return u != v && bitmatrix.Bit(x, u, v, n) }
	adjIn := func(u, v int) bool { return u != v && bitmatrix.Bit(x, v, u, n) }

	return c.oracle.Canonicalize(n, adjOut, adjIn, seed)
}

func (c *graphCanon) bipartiteLabel(x bitmatrix.Matrix) ([]int, uint64, error) {
	n := c.n
	nv := 2 * n

	seed := make([]int, nv)
	for i := 0; i < n; i++ {
		seed[i] = 0
	}

	for j := 0; j < n; j++ {
		seed[n+j] = 1
	}

	adjOut := func(u, v int) bool {
		if u < n && v >= n {
			return bitmatrix.Bit(x, u, v-n, n)
		}

		return false
	}
	adjIn := func(u, v int) bool { return adjOut(v, u) }

	lab, aut := c.oracle.Canonicalize(nv, adjOut, adjIn, seed)

	for i := 0; i < n; i++ {
		if lab[i] >= n {
			return nil, 0, ErrBlockShapeAssumption
		}
	}

	for i := n; i < nv; i++ {
		if lab[i] < n {
			return nil, 0, ErrBlockShapeAssumption
		}
	}

	return lab, aut, nil
}

func (c *graphCanon) RepresentativePerm(x bitmatrix.Matrix) (bitmatrix.Matrix, bitmatrix.Perm, bitmatrix.Perm, error) {
	n := c.n

	if !c.swap {
		lab, _ := c.digraphLabel(x)

		var pi bitmatrix.Perm
		for i := 0; i < n; i++ {
			pi[i] = byte(lab[i])
		}

		return bitmatrix.Permute(x, pi, n), pi, pi, nil
	}

	lab, _, err := c.bipartiteLabel(x)
	if err != nil {
		return bitmatrix.Matrix(0), bitmatrix.Perm{}, bitmatrix.Perm{}, err
	}

	var sigma, tau bitmatrix.Perm

	for i := 0; i < n; i++ {
		sigma[i] = byte(lab[i])
	}

	for j := 0; j < n; j++ {
		tau[j] = byte(lab[n+j] - n)
	}

	return bitmatrix.Permute2(x, sigma, tau, n), sigma, tau, nil
}

func (c *graphCanon) Canonicalize(x bitmatrix.Matrix) (bitmatrix.Matrix, uint64, error) {
	n := c.n

	if !c.swap {
		lab, aut := c.digraphLabel(x)

		var pi bitmatrix.Perm
		for i := 0; i < n; i++ {
			pi[i] = byte(lab[i])
		}

		orbit := bitmatrix.Factorial[n] / aut

		return bitmatrix.Permute(x, pi, n), orbit, nil
	}

	lab, aut, err := c.bipartiteLabel(x)
	if err != nil {
		return bitmatrix.Matrix(0), 0, err
	}

	var sigma, tau bitmatrix.Perm

	for i := 0; i < n; i++ {
		sigma[i] = byte(lab[i])
	}

	for j := 0; j < n; j++ {
		tau[j] = byte(lab[n+j] - n)
	}

	orbit := bitmatrix.Factorial[n] * bitmatrix.Factorial[n] / aut

	return bitmatrix.Permute2(x, sigma, tau, n), orbit, nil
}

func (c *graphCanon) EquivPerm(m1, m2 bitmatrix.Matrix) (bitmatrix.Perm, bitmatrix.Perm, error) {
	n := c.n

	rep1, sigmaA, tauA, err := c.RepresentativePerm(m1)
	if err != nil {
		return bitmatrix.Perm{}, bitmatrix.Perm{}, err
	}

	rep2, sigmaB, tauB, err := c.RepresentativePerm(m2)
	if err != nil {
		return bitmatrix.Perm{}, bitmatrix.Perm{}, err
	}

	if rep1 != rep2 {
		return bitmatrix.Perm{}, bitmatrix.Perm{}, ErrNotEquivalent
	}

	sigma := bitmatrix.ComposeInv(sigmaA, sigmaB, n)
	tau := bitmatrix.ComposeInv(tauA, tauB, n)

	return sigma, tau, nil
}

var _ Canonicalizer = (*graphCanon)(nil)
