package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boolmat/cnotbfs/internal/bitmatrix"
)

func Test_Engine_FindCircuit_Reconstructs_Reachable_Goal(t *testing.T) {
	t.Parallel()

	n := 3
	cfg := DefaultConfig()
	cfg.N = n
	cfg.Max = 10

	e, err := New(cfg, nil)
	require.NoError(t, err)

	start := bitmatrix.IdentityMatrix(n)
	goal := bitmatrix.RowXORInto(start, 0, 1, n)
	goal = bitmatrix.RowXORInto(goal, 1, 2, n)

	result, err := e.FindCircuit(context.Background(), start, goal)
	require.NoError(t, err)
	require.True(t, result.Bidir.Found)

	final := start
	for _, g := range result.Trace.Gates {
		final = bitmatrix.RowXORInto(final, g.Control, g.Target, n)
	}

	require.Equal(t, goal, final)
}

func Test_Engine_Enumerate_Counts_Full_Identity_Orbit(t *testing.T) {
	t.Parallel()

	n := 2
	cfg := DefaultConfig()
	cfg.N = n
	cfg.Max = 10

	e, err := New(cfg, nil)
	require.NoError(t, err)

	result, err := e.Enumerate(context.Background(), bitmatrix.IdentityMatrix(n))
	require.NoError(t, err)
	require.Greater(t, result.Result.OrbitTotal, uint64(0))
}

func Test_Engine_Investigate_Reports_Essential_Count(t *testing.T) {
	t.Parallel()

	n := 3
	cfg := DefaultConfig()
	cfg.N = n

	e, err := New(cfg, nil)
	require.NoError(t, err)

	m := bitmatrix.RowXORInto(bitmatrix.IdentityMatrix(n), 0, 1, n)

	inv, err := e.Investigate(m)
	require.NoError(t, err)
	require.Equal(t, 2, inv.Essential)
	require.Greater(t, inv.OrbitSize, uint64(0))
}
