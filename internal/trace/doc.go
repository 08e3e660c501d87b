// Package trace reconstructs an explicit CNOT gate sequence from a BFS
// search's saved frontier levels: StepBack walks a single level backward by
// trying every row-XOR undo and checking the result's canonical
// representative against the prior frontier; TraceBack repeats that across a
// whole half of a bidirectional search; Middle stitches the forward and
// backward halves together at their common witness and remaps the result
// from the search's internal canonical representatives back onto the
// caller's actual start/goal matrices.
//
// The remap is where swap (independent row/column permutation) regimes
// diverge from plain ones. Under swap=false a single permutation carries the
// whole reconstructed trace onto the real goal exactly. Under swap=true no
// single permutation can always do that — the reconstructed circuit lands on
// the real goal only after an additional independent row/column relabeling,
// which Middle reports as RowPerm/ColPerm rather than folding into more
// gates. This composition is this implementation's own derivation (verified
// by the round-trip property test in middle_test.go), not a verbatim port:
// the source's compose_perm/compose_inv_perm/inv_perm helpers are used
// throughout trace_back.h but never defined in any file this implementation
// could retrieve.
package trace
