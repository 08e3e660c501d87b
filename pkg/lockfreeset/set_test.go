package lockfreeset_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boolmat/cnotbfs/pkg/lockfreeset"
)

func Test_New_Rejects_Scale_Below_Minimum(t *testing.T) {
	_, err := lockfreeset.New(lockfreeset.MinScale - 1)
	require.ErrorIs(t, err, lockfreeset.ErrInvalidScale)
}

func Test_Insert_Then_Contains_Finds_Key(t *testing.T) {
	s, err := lockfreeset.New(8)
	require.NoError(t, err)
	defer s.Close()

	isNew, err := s.Insert(42)
	require.NoError(t, err)
	require.True(t, isNew)

	_, ok, err := s.Contains(42)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = s.Contains(7)
	require.NoError(t, err)
	require.False(t, ok)
}

func Test_Insert_Same_Key_Twice_Is_Not_New_The_Second_Time(t *testing.T) {
	s, err := lockfreeset.New(8)
	require.NoError(t, err)
	defer s.Close()

	isNew, err := s.Insert(99)
	require.NoError(t, err)
	require.True(t, isNew)

	isNew, err = s.Insert(99)
	require.NoError(t, err)
	require.False(t, isNew)

	require.EqualValues(t, 1, s.Count())
}

func Test_Insert_Rejects_Zero_Key(t *testing.T) {
	s, err := lockfreeset.New(8)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Insert(0)
	require.ErrorIs(t, err, lockfreeset.ErrZeroKey)
}

func Test_FindOrPut_Returns_Stable_Slot_For_A_Key(t *testing.T) {
	s, err := lockfreeset.New(8)
	require.NoError(t, err)
	defer s.Close()

	slot1, err := s.FindOrPut(123)
	require.NoError(t, err)

	slot2, err := s.FindOrPut(123)
	require.NoError(t, err)

	require.Equal(t, slot1, slot2)
	require.Equal(t, uint64(123), s.Get(slot1))
}

func Test_Operations_After_Close_Return_ErrClosed(t *testing.T) {
	s, err := lockfreeset.New(8)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.FindOrPut(5)
	require.ErrorIs(t, err, lockfreeset.ErrClosed)
}

func Test_Close_Is_Idempotent(t *testing.T) {
	s, err := lockfreeset.New(8)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func Test_QuadLinear_Probe_Strategy_Also_Finds_Inserted_Keys(t *testing.T) {
	s, err := lockfreeset.New(8, lockfreeset.WithProbeStrategy(lockfreeset.ProbeQuadLinear))
	require.NoError(t, err)
	defer s.Close()

	keys := []uint64{1, 2, 3, 1 << 20, 1 << 40, 1<<63 + 1}
	for _, k := range keys {
		_, err := s.Insert(k)
		require.NoError(t, err)
	}

	for _, k := range keys {
		_, ok, err := s.Contains(k)
		require.NoError(t, err)
		require.True(t, ok, "key %d should be present", k)
	}
}

func Test_MurmurHasher_Hashes_Zero_To_Zero(t *testing.T) {
	require.EqualValues(t, 0, lockfreeset.MurmurHasher{}.Hash(0))
}

func Test_XXHasher_Hashes_Zero_To_Zero(t *testing.T) {
	require.EqualValues(t, 0, lockfreeset.XXHasher{}.Hash(0))
}

func Test_ForAll_Visits_Every_Inserted_Key_Exactly_Once(t *testing.T) {
	s, err := lockfreeset.New(10)
	require.NoError(t, err)
	defer s.Close()

	want := map[uint64]int{}
	r := rand.New(rand.NewSource(1))

	for len(want) < 200 {
		k := r.Uint64()
		if k == 0 {
			continue
		}

		if _, err := s.Insert(k); err != nil {
			t.Fatalf("insert: %v", err)
		}

		want[k] = 0
	}

	got := map[uint64]int{}

	var mu sync.Mutex

	s.ForAll(func(key uint64) {
		mu.Lock()
		got[key]++
		mu.Unlock()
	})

	require.Len(t, got, len(want))

	for k, n := range got {
		require.Equal(t, 1, n, "key %d visited %d times", k, n)
	}
}

// Test_Concurrent_Insert_Has_No_Duplicates_And_No_Lost_Keys exercises the
// CAS insert loop from many goroutines at once: every distinct key across
// all workers must end up present exactly once, and every key any worker
// inserted must subsequently be found by Contains.
func Test_Concurrent_Insert_Has_No_Duplicates_And_No_Lost_Keys(t *testing.T) {
	const (
		workers     = 8
		perWorker   = 20000
		tableScale  = 20 // 2^20 buckets comfortably holds 160k keys.
	)

	s, err := lockfreeset.New(tableScale)
	require.NoError(t, err)
	defer s.Close()

	all := make([][]uint64, workers)

	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func(w int) {
			defer wg.Done()

			r := rand.New(rand.NewSource(int64(w) + 1))
			keys := make([]uint64, 0, perWorker)

			for len(keys) < perWorker {
				k := r.Uint64()
				if k == 0 {
					continue
				}

				keys = append(keys, k)

				if _, err := s.Insert(k); err != nil {
					t.Errorf("worker %d insert: %v", w, err)
					return
				}
			}

			all[w] = keys
		}(w)
	}

	wg.Wait()

	distinct := map[uint64]struct{}{}

	for _, keys := range all {
		for _, k := range keys {
			distinct[k] = struct{}{}

			_, ok, err := s.Contains(k)
			require.NoError(t, err)
			require.True(t, ok, "key %d inserted but not found", k)
		}
	}

	require.EqualValues(t, len(distinct), s.Count())
}
