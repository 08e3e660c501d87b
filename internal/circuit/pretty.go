// Package circuit renders a reconstructed trace.Result as OpenQASM 2.0,
// pretty-prints matrices and permutations for human inspection, and
// self-checks a reconstructed circuit by replaying it before reporting
// success. Grounded on original_source/matrix.h's pretty_matrix/pretty_perm
// and original_source/src/trace_back.h's print_trace.
package circuit

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/boolmat/cnotbfs/internal/bitmatrix"
)

// PrettyMatrix renders m as the original's pretty_matrix did: a delimiter
// line of n*2-1 '=' characters, n rows of space-separated 0/1 digits, and a
// closing delimiter.
func PrettyMatrix(m bitmatrix.Matrix, n int) string {
	delimiter := strings.Repeat("=", n*2-1)

	var b strings.Builder

	b.WriteString(delimiter)
	b.WriteByte('\n')

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if bitmatrix.Bit(m, i, j, n) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}

			b.WriteByte(' ')
		}

		b.WriteByte('\n')
	}

	b.WriteString(delimiter)
	b.WriteByte('\n')

	return b.String()
}

// PrettyPerm renders pi as the original's pretty_perm did: a header row of
// indices followed by a row of pi's values, each field right-aligned to a
// 3-column width. go-runewidth's FillLeft pads on display width rather than
// byte count, matching printf("%3u", ...) for every value this package ever
// sees (all single- or double-digit, N<=8) without assuming ASCII digit
// widths hold for wider terminals.
func PrettyPerm(pi bitmatrix.Perm, n int) string {
	var idxRow, valRow strings.Builder

	for i := 0; i < n; i++ {
		idxRow.WriteString(runewidth.FillLeft(strconv.Itoa(i), 3))
		valRow.WriteString(runewidth.FillLeft(strconv.Itoa(int(pi[i])), 3))
	}

	return idxRow.String() + "\n" + valRow.String() + "\n"
}
