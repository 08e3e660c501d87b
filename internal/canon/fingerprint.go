package canon

import (
	"sort"

	"github.com/boolmat/cnotbfs/internal/bitmatrix"
)

// finger is the per-index fingerprint: whether the diagonal bit is absent,
// the off-diagonal row weight, and the off-diagonal column weight. Indices
// with finger (diagAbsent: false, row: 0, col: 0) — a fixed point touching
// nothing else — are isolated and sort first.
type finger struct {
	diagAbsent bool
	row        byte
	col        byte
	index      byte
}

func lessFinger(a, b finger) bool {
	if a.diagAbsent != b.diagAbsent {
		return !a.diagAbsent
	}

	if a.row != b.row {
		return a.row < b.row
	}

	return a.col < b.col
}

func computeFingerprint(x bitmatrix.Matrix, n int) []finger {
	f := make([]finger, n)
	for i := range f {
		f[i] = finger{diagAbsent: true, index: byte(i)}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !bitmatrix.Bit(x, i, j, n) {
				continue
			}

			if i == j {
				f[i].diagAbsent = false
			} else {
				f[i].row++
				f[j].col++
			}
		}
	}

	return f
}

// isolatedPrefixLen counts the leading run of isolated indices once f is
// sorted: fixed points with no off-diagonal participation at all.
func isolatedPrefixLen(f []finger) int {
	i := 0
	for i < len(f) && !f[i].diagAbsent && f[i].row == 0 && f[i].col == 0 {
		i++
	}

	return i
}

// fingerCycles returns the run-lengths of maximal equal-fingerprint blocks
// in f[start:], used to bound the residual permutation search to
// automorphism-compatible index groups.
func fingerCycles(f []finger, start int) []int {
	var cycles []int

	i := start
	for i < len(f) {
		j := i + 1
		for j < len(f) && !lessFinger(f[i], f[j]) {
			j++
		}

		cycles = append(cycles, j-i)
		i = j
	}

	return cycles
}

func sortFingerprint(f []finger) {
	sort.Slice(f, func(i, j int) bool { return lessFinger(f[i], f[j]) })
}

// fingerprintCanon implements Canonicalizer for the non-swap regime by
// sorting indices on their fingerprint and brute-forcing the residual
// permutation within each equal-fingerprint run.
type fingerprintCanon struct {
	n int
}

func newFingerprintCanon(n int) *fingerprintCanon {
	return &fingerprintCanon{n: n}
}

// normalize sorts x's fingerprint and returns the base permutation pi1 (new
// position -> original index) together with y := Permute(x, pi1, n) and the
// sorted fingerprints.
func (c *fingerprintCanon) normalize(x bitmatrix.Matrix) (bitmatrix.Matrix, bitmatrix.Perm, []finger) {
	f := computeFingerprint(x, c.n)
	sortFingerprint(f)

	var pi1 bitmatrix.Perm
	for i := 0; i < c.n; i++ {
		pi1[i] = f[i].index
	}

	y := bitmatrix.Permute(x, pi1, c.n)

	return y, pi1, f
}

func (c *fingerprintCanon) RepresentativePerm(x bitmatrix.Matrix) (bitmatrix.Matrix, bitmatrix.Perm, bitmatrix.Perm, error) {
	y, pi1, f := c.normalize(x)

	isolated := isolatedPrefixLen(f)
	cycles := fingerCycles(f, isolated)

	smallest := y
	winner := bitmatrix.Identity(c.n)

	forEachBlockPerm(cycles, c.n-isolated, func(residual []byte) {
		var pi bitmatrix.Perm

		for i := 0; i < isolated; i++ {
			pi[i] = byte(i)
		}

		for i, v := range residual {
			pi[isolated+i] = byte(int(v) + isolated)
		}

		z := bitmatrix.Permute(y, pi, c.n)
		if z < smallest {
			smallest = z
			winner = pi
		}
	})

	full := bitmatrix.Compose(pi1, winner, c.n)

	return smallest, full, full, nil
}

func (c *fingerprintCanon) Canonicalize(x bitmatrix.Matrix) (bitmatrix.Matrix, uint64, error) {
	y, _, f := c.normalize(x)

	isolated := isolatedPrefixLen(f)
	cycles := fingerCycles(f, isolated)

	smallest := y

	var stabilizers uint64

	forEachBlockPerm(cycles, c.n-isolated, func(residual []byte) {
		var pi bitmatrix.Perm

		for i := 0; i < isolated; i++ {
			pi[i] = byte(i)
		}

		for i, v := range residual {
			pi[isolated+i] = byte(int(v) + isolated)
		}

		z := bitmatrix.Permute(y, pi, c.n)

		switch {
		case z == y:
			stabilizers++
		case z < smallest:
			smallest = z
		}
	})

	orbit := bitmatrix.Factorial[c.n] / (stabilizers * bitmatrix.Factorial[isolated])

	return smallest, orbit, nil
}

func (c *fingerprintCanon) EquivPerm(m1, m2 bitmatrix.Matrix) (bitmatrix.Perm, bitmatrix.Perm, error) {
	rep1, piA, _, _ := c.RepresentativePerm(m1)
	rep2, piB, _, _ := c.RepresentativePerm(m2)

	if rep1 != rep2 {
		return bitmatrix.Perm{}, bitmatrix.Perm{}, ErrNotEquivalent
	}

	pi := bitmatrix.ComposeInv(piA, piB, c.n)

	return pi, pi, nil
}

var _ Canonicalizer = (*fingerprintCanon)(nil)
