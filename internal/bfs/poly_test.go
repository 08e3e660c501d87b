package bfs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boolmat/cnotbfs/internal/bitmatrix"
)

func Test_MiddleDepth_Matches_Only_The_Exact_Halfway_Point(t *testing.T) {
	t.Parallel()

	require.True(t, MiddleDepth(4, 3))  // 2*(3-1) == 4
	require.False(t, MiddleDepth(4, 2)) // 2*(2-1) == 2 != 4
	require.False(t, MiddleDepth(5, 3)) // odd N has no exact middle depth
}

func Test_PolyAccumulator_Add_Weights_By_Essential_Count(t *testing.T) {
	t.Parallel()

	const n = 3

	p := NewPolyAccumulator(n)

	identity := bitmatrix.IdentityMatrix(n) // 0 essential indices
	p.Add(identity, 1)

	coef := p.Coefficients()
	require.Len(t, coef, n+1)
	require.EqualValues(t, 1, coef[n]) // N-essential = 3-0 = 3

	for i, v := range coef {
		if i != n {
			require.EqualValues(t, 0, v)
		}
	}
}
