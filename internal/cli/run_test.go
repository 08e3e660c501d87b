package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boolmat/cnotbfs/internal/bitmatrix"
	"github.com/boolmat/cnotbfs/internal/goalfile"
)

func writeGoalFile(t *testing.T, n int, m bitmatrix.Matrix) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "goal.txt")
	require.NoError(t, os.WriteFile(path, []byte(goalfile.Format(m, n)), 0o644))

	return path
}

func Test_Run_Finds_Circuit_For_Reachable_Goal(t *testing.T) {
	n := 3
	goal := bitmatrix.RowXORInto(bitmatrix.IdentityMatrix(n), 0, 1, n)
	path := writeGoalFile(t, n, goal)

	var stdout, stderr bytes.Buffer
	code := Run(&stdout, &stderr, []string{"--n=3", "--max=10", path})

	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	require.Contains(t, stdout.String(), "Found at distance 1")
	require.Contains(t, stdout.String(), "The result is correct!")
}

func Test_Run_Reports_Unreachable_Goal_Under_Depth_Limit(t *testing.T) {
	n := 3
	goal := bitmatrix.RowXORInto(bitmatrix.IdentityMatrix(n), 0, 1, n)
	goal = bitmatrix.RowXORInto(goal, 1, 2, n)
	goal = bitmatrix.RowXORInto(goal, 2, 0, n)
	path := writeGoalFile(t, n, goal)

	var stdout, stderr bytes.Buffer
	code := Run(&stdout, &stderr, []string{"--n=3", "--max=10", "--limit=0", path})

	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	require.Contains(t, stdout.String(), "Goal not found after")
}

func Test_Run_Legacy_Limit_Argument_Parses_Alongside_Goal_File(t *testing.T) {
	n := 3
	goal := bitmatrix.RowXORInto(bitmatrix.IdentityMatrix(n), 0, 1, n)
	path := writeGoalFile(t, n, goal)

	var stdout, stderr bytes.Buffer
	code := Run(&stdout, &stderr, []string{"--n=3", "--max=10", "-5", path})

	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	require.Contains(t, stdout.String(), "Cutting off at maximum distance: 5")
}

func Test_Run_Without_Goal_Enumerates(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(&stdout, &stderr, []string{"--n=2", "--max=10"})

	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	require.Contains(t, stdout.String(), "Total size:")
}

func Test_Run_Rejects_Zero_Goal_Matrix(t *testing.T) {
	n := 3
	path := writeGoalFile(t, n, 0)

	var stdout, stderr bytes.Buffer
	code := Run(&stdout, &stderr, []string{"--n=3", path})

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "0-matrix cannot be generated")
}

func Test_Inspect_Reports_Orbit_And_Essential_Count(t *testing.T) {
	n := 3
	m := bitmatrix.RowXORInto(bitmatrix.IdentityMatrix(n), 0, 1, n)
	path := writeGoalFile(t, n, m)

	var stdout, stderr bytes.Buffer
	code := Run(&stdout, &stderr, []string{"inspect", "--n=3", path})

	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	require.Contains(t, stdout.String(), "Essential indices: 2")
	require.Contains(t, stdout.String(), "Orbit size:")
}

func Test_Inspect_Requires_Matrix_File_Argument(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(&stdout, &stderr, []string{"inspect", "--n=3"})

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "inspect requires a matrix file argument")
}

func Test_Run_Unrecognized_Word_Is_Treated_As_Goal_File(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(&stdout, &stderr, []string{"frobnicate"})

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "could not read goal matrix")
	require.True(t, strings.Contains(stderr.String(), "frobnicate"))
}

func Test_Run_Rejects_Swap_Without_Nauty(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(&stdout, &stderr, []string{"--n=3", "--swap"})

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "error:")
}

func Test_Run_Help_Flag_Prints_Usage_Without_Error(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(&stdout, &stderr, []string{"inspect", "--help"})

	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	require.Contains(t, stdout.String(), "Usage: cnotbfs inspect")
}
