package bfs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/boolmat/cnotbfs/internal/bitmatrix"
	"github.com/boolmat/cnotbfs/internal/canon"
	"github.com/boolmat/cnotbfs/pkg/lockfreeset"
)

func newTestConfig(n int) Config {
	return Config{N: n, Max: 16, Probe: lockfreeset.ProbeLinear}
}

func Test_Expand_Discovers_The_Single_Distance_One_Orbit(t *testing.T) {
	t.Parallel()

	const n = 3

	c, err := canon.New(canon.Config{N: n})
	require.NoError(t, err)

	cfg := newTestConfig(n)

	prev, err := cfg.newFrontier(lockfreeset.MinScale)
	require.NoError(t, err)

	current, err := cfg.newFrontier(lockfreeset.MinScale)
	require.NoError(t, err)

	idRep, _, err := c.Canonicalize(bitmatrix.IdentityMatrix(n))
	require.NoError(t, err)
	_, err = current.Insert(uint64(idRep))
	require.NoError(t, err)

	next, err := cfg.newFrontier(6)
	require.NoError(t, err)

	e := NewExpander(cfg, c, nil, nil, time.Now())

	orbitCount, matrixCount, err := e.Expand(context.Background(), prev, current, next, 2)
	require.NoError(t, err)

	// Every single-CNOT-away successor of the identity is equivalent to
	// every other under row/column permutation, so the whole depth
	// collapses onto exactly one orbit.
	require.EqualValues(t, 1, orbitCount)
	require.Equal(t, orbitCount, next.Count())
	require.Greater(t, matrixCount, uint64(0))
}

func Test_Expand_Skips_Successors_Already_Present_In_Prev(t *testing.T) {
	t.Parallel()

	const n = 3

	c, err := canon.New(canon.Config{N: n})
	require.NoError(t, err)

	cfg := newTestConfig(n)

	idRep, _, err := c.Canonicalize(bitmatrix.IdentityMatrix(n))
	require.NoError(t, err)

	oneStepRep, _, err := c.Canonicalize(bitmatrix.RowXORInto(bitmatrix.IdentityMatrix(n), 0, 1, n))
	require.NoError(t, err)

	prev, err := cfg.newFrontier(lockfreeset.MinScale)
	require.NoError(t, err)
	_, err = prev.Insert(uint64(oneStepRep))
	require.NoError(t, err)

	current, err := cfg.newFrontier(lockfreeset.MinScale)
	require.NoError(t, err)
	_, err = current.Insert(uint64(idRep))
	require.NoError(t, err)

	next, err := cfg.newFrontier(6)
	require.NoError(t, err)

	e := NewExpander(cfg, c, nil, nil, time.Now())

	orbitCount, matrixCount, err := e.Expand(context.Background(), prev, current, next, 2)
	require.NoError(t, err)
	require.EqualValues(t, 0, orbitCount)
	require.EqualValues(t, 0, matrixCount)
	require.EqualValues(t, 0, next.Count())
}

func Test_Expand_Surfaces_ErrCapacity_When_Next_Table_Is_Exhausted(t *testing.T) {
	t.Parallel()

	const n = 4

	c, err := canon.New(canon.Config{N: n})
	require.NoError(t, err)

	cfg := newTestConfig(n)

	prev, err := cfg.newFrontier(lockfreeset.MinScale)
	require.NoError(t, err)

	current, err := cfg.newFrontier(lockfreeset.MinScale)
	require.NoError(t, err)

	idRep, _, err := c.Canonicalize(bitmatrix.IdentityMatrix(n))
	require.NoError(t, err)
	_, err = current.Insert(uint64(idRep))
	require.NoError(t, err)

	// Saturate a minimum-scale (8 bucket) next table with unrelated keys
	// so the first real insert attempt is guaranteed to exhaust the probe
	// sequence.
	next, err := cfg.newFrontier(lockfreeset.MinScale)
	require.NoError(t, err)

	for key := uint64(1); ; key++ {
		if _, ferr := next.Insert(key); ferr != nil {
			require.ErrorIs(t, ferr, lockfreeset.ErrFull)
			break
		}
	}

	e := NewExpander(cfg, c, nil, nil, time.Now())

	_, _, err = e.Expand(context.Background(), prev, current, next, 2)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrCapacity))
}
