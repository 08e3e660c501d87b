package bitmatrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Permute_Is_Identity_When_Pi_Is_Identity(t *testing.T) {
	t.Parallel()

	const n = 4

	x := Matrix(0b1101_0010_1110_0001)
	pi := Identity(n)

	require.Equal(t, x, Permute(x, pi, n))
}

func Test_Permute_Composes_Like_Function_Composition(t *testing.T) {
	t.Parallel()

	const n = 4

	x := Matrix(0xABCD)
	// Non-commuting: pi1 is a 4-cycle, pi2 a transposition: pi1∘pi2 !=
	// pi2∘pi1, so this actually exercises composition order.
	pi1 := Perm{1, 2, 3, 0}
	pi2 := Perm{1, 0, 2, 3}

	lhs := Permute(Permute(x, pi1, n), pi2, n)
	rhs := Permute(x, Compose(pi1, pi2, n), n)

	require.Equal(t, rhs, lhs)
	require.NotEqual(t, Compose(pi1, pi2, n), Compose(pi2, pi1, n))
}

func Test_Inverse_Round_Trips_Permute(t *testing.T) {
	t.Parallel()

	const n = 5

	x := IdentityMatrix(n) | (1 << 1)
	pi := Perm{4, 2, 0, 3, 1}

	y := Permute(x, pi, n)
	back := Permute(y, Inverse(pi, n), n)

	require.Equal(t, x, back)
}

func Test_RowXORInto_Is_Its_Own_Inverse(t *testing.T) {
	t.Parallel()

	const n = 3

	x := IdentityMatrix(n)
	y := RowXORInto(x, 0, 1, n)
	back := RowXORInto(y, 0, 1, n)

	require.Equal(t, x, back)
}

func Test_CountEssential_Excludes_Isolated_Indices(t *testing.T) {
	t.Parallel()

	const n = 3

	// Identity with one extra off-diagonal bit at (row 0 <- row 1): row 2 stays
	// isolated (diagonal 1, no off-diagonal interaction).
	x := IdentityMatrix(n) | (1 << uint(n*0+1))

	require.True(t, IsEssential(x, 0, n))
	require.True(t, IsEssential(x, 1, n))
	require.False(t, IsEssential(x, 2, n))
	require.Equal(t, 2, CountEssential(x, n))
}

func Test_IdentityMatrix_Has_Only_Diagonal_Bits_Set(t *testing.T) {
	t.Parallel()

	const n = 4
	m := IdentityMatrix(n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.Equal(t, i == j, Bit(m, i, j, n))
		}
	}
}

func Test_Permute2_Matches_Permute_When_Sigma_Equals_Tau(t *testing.T) {
	t.Parallel()

	const n = 4

	x := Matrix(0xBEEF)
	pi := Perm{3, 1, 2, 0}

	require.Equal(t, Permute(x, pi, n), Permute2(x, pi, pi, n))
}
