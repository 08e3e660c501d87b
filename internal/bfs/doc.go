// Package bfs implements the orbit-quotiented, parallel breadth-first search
// over invertible N×N Boolean matrices under the CNOT row-addition rewrite.
//
// Two collaborating pieces live here:
//
//   - Expander applies every legal row-addition to every matrix of one BFS
//     level, canonicalizes each successor, and deduplicates it against the
//     previous and current levels before inserting it into the next.
//   - Controller drives Expander level by level, either forward only
//     (enumerating the whole reachable space) or bidirectionally from both
//     the identity and a requested goal, stopping at the first frontier
//     intersection.
//
// Frontiers are pkg/lockfreeset tables keyed by bitmatrix.Matrix values (the
// packed uint64 representation); their scale is chosen per level from the
// levelSizes hint tables ported from the original search, plus a
// caller-supplied extra margin, clamped to a maximum. The hint tables are
// approximate past a certain depth for N=8 (see levelsizes.go) — when an
// under-sized table actually runs out of room, Expander surfaces ErrCapacity
// rather than silently growing or capping the table.
package bfs
