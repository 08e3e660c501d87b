// Package canon computes, for a Boolean matrix, the lexicographically
// smallest representative of its equivalence class under row/column
// permutation (or, with the swap option, under independent row and column
// permutations), plus the orbit's size.
//
// Two interchangeable backends satisfy the same Canonicalizer contract:
//
//   - fingerprintCanon ("Backend A") computes a per-index fingerprint
//     (diagonal presence, row weight, column weight), sorts indices by it,
//     and brute-forces the residual permutation within each run of
//     equal-fingerprint indices. It only handles the single-permutation
//     (non-swap) regime, where it is cheap and exact.
//   - graphCanon ("Backend B") treats the matrix as a directed graph (or,
//     under swap, a bipartite graph linking N row-vertices to N
//     column-vertices) and runs equitable color refinement followed by a
//     brute-force search within color classes. This is the only backend
//     that supports the swap regime, and is selected whenever NAUTY is
//     requested even without swap (for cross-checking against Backend A).
//
// Neither backend links against the real nauty library named as this
// system's external graph-canonicalization collaborator: no Go binding for
// it exists, and cgo-wrapping a C dependency doesn't fit the rest of this
// module's pure-Go stack. graphCanon's GraphOracle interface exists so a
// real binding could later be substituted without touching callers.
package canon
