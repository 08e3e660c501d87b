package circuit

import (
	"fmt"
	"io"

	"github.com/boolmat/cnotbfs/internal/bitmatrix"
	"github.com/boolmat/cnotbfs/internal/trace"
)

// Emit writes result's reconstructed circuit as OpenQASM 2.0 to w, followed
// by the same diagnostic trailer print_trace produced: the matrix reached
// by replaying the circuit against start, the permuted form under the swap
// regime, and a final correctness line. swap selects whether the
// row/column-permutation trailer is printed; it must match the regime
// result was reconstructed under.
//
// Emit does its own self-check (replaying result.Gates via trace.Apply and
// comparing against goal, permuted by result.RowPerm/ColPerm when swap is
// set) rather than trusting the caller's bookkeeping — mirroring
// print_trace's own closing assert-free correctness check.
func Emit(w io.Writer, result trace.Result, start, goal bitmatrix.Matrix, n int, swap bool) error {
	if _, err := fmt.Fprintf(w, "\nOPENQASM 2.0;\ninclude \"qelib1.inc\";\nqreg q[%d];\n\n", n); err != nil {
		return err
	}

	for _, g := range result.Gates {
		if _, err := fmt.Fprintf(w, "cx q[%d],q[%d];\n", g.Control, g.Target); err != nil {
			return err
		}
	}

	reached := trace.Apply(start, result.Gates, n)

	if _, err := fmt.Fprintf(w, "\nResult of the circuit:\n%s", PrettyMatrix(reached, n)); err != nil {
		return err
	}

	final := reached

	if swap {
		if _, err := fmt.Fprintf(w, "\nRow permutation:\n%s", PrettyPerm(result.RowPerm, n)); err != nil {
			return err
		}

		final = bitmatrix.Permute2(reached, result.RowPerm, result.ColPerm, n)

		if _, err := fmt.Fprintf(w, "\nPermuted Result:\n%s", PrettyMatrix(final, n)); err != nil {
			return err
		}
	}

	if final == goal {
		_, err := fmt.Fprintln(w, "The result is correct!")
		return err
	}

	_, err := fmt.Fprintln(w, "Error: result is incorrect!")

	return err
}
