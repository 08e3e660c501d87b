package bitmatrix

// IdentityMatrix returns the N×N identity matrix.
func IdentityMatrix(n int) Matrix {
	var m Matrix
	for i := 0; i < n; i++ {
		m |= 1 << uint((n+1)*i)
	}

	return m
}

// Bit reports entry (row, col) of m under dimension n.
func Bit(m Matrix, row, col, n int) bool {
	return m&(1<<uint(n*row+col)) != 0
}

// rowMask returns a mask selecting the n bits of row i (before shifting).
func rowMask(n int) Matrix {
	return (Matrix(1) << uint(n)) - 1
}

// Row extracts row i of m as the low n bits of the result.
func Row(m Matrix, i, n int) Matrix {
	return (m >> uint(n*i)) & rowMask(n)
}

// RowXORInto returns the matrix obtained by the CNOT rewrite row_j ^= row_i
// (i != j). This is the fundamental rewrite of the search; it is its own
// inverse under XOR, which TraceBack relies on.
func RowXORInto(x Matrix, i, j, n int) Matrix {
	row := Row(x, i, n)

	return x ^ (row << uint(n*j))
}

// Permute applies a single permutation to both rows and columns:
// y[i][j] := x[pi[i]][pi[j]].
func Permute(x Matrix, pi Perm, n int) Matrix {
	var y Matrix
	for i := n - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			y <<= 1
			if Bit(x, int(pi[i]), int(pi[j]), n) {
				y |= 1
			}
		}
	}

	return y
}

// Permute2 applies independent row and column permutations ("swap" regime):
// y[i][j] := x[sigma(i)][tau(j)].
func Permute2(x Matrix, sigma, tau Perm, n int) Matrix {
	var y Matrix
	for i := n - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			y <<= 1
			if Bit(x, int(sigma[i]), int(tau[j]), n) {
				y |= 1
			}
		}
	}

	return y
}

// IsEssential reports whether index i participates in the matrix: its
// diagonal entry is 0, or it has an off-diagonal 1 in its row or column.
// Inessential indices are "isolated vertices" of the matrix-as-graph.
func IsEssential(x Matrix, i, n int) bool {
	if !Bit(x, i, i, n) {
		return true
	}

	for j := 0; j < n; j++ {
		if j != i && (Bit(x, i, j, n) || Bit(x, j, i, n)) {
			return true
		}
	}

	return false
}

// CountEssential counts essential indices of x.
func CountEssential(x Matrix, n int) int {
	count := 0

	for i := 0; i < n; i++ {
		if IsEssential(x, i, n) {
			count++
		}
	}

	return count
}

// Factorial holds n! for n in 0..8, matching the original's precomputed
// table (original_source/options.h).
var Factorial = [9]uint64{1, 1, 2, 6, 24, 120, 720, 5040, 40320}
