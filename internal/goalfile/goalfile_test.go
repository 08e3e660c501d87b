package goalfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boolmat/cnotbfs/internal/bitmatrix"
)

func Test_Parse_RoundTrips_With_Format(t *testing.T) {
	t.Parallel()

	const n = 3

	m := bitmatrix.IdentityMatrix(n)
	m = bitmatrix.RowXORInto(m, 0, 2, n)

	parsed, err := Parse(strings.NewReader(Format(m, n)), n)
	require.NoError(t, err)
	require.Equal(t, m, parsed)
}

func Test_Parse_Skips_Whitespace(t *testing.T) {
	t.Parallel()

	const n = 2

	m, err := Parse(strings.NewReader("1 0\n0 1\n"), n)
	require.NoError(t, err)
	require.Equal(t, bitmatrix.IdentityMatrix(n), m)
}

func Test_Parse_Rejects_Invalid_Digit(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("102\n1011"), 2)
	require.ErrorIs(t, err, ErrInvalidDigit)
}

func Test_Parse_Rejects_Truncated_Input(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("10"), 2)
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func Test_Read_Wraps_Missing_File(t *testing.T) {
	t.Parallel()

	_, err := Read("/no/such/path/goal.txt", 3)
	require.ErrorIs(t, err, ErrGoalFile)
}
