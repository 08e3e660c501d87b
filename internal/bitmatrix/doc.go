// Package bitmatrix implements bit-packed N×N boolean matrix arithmetic, N in 1..8.
//
// A Matrix packs its entries row-major into a single uint64: bit (i*N+j) holds
// entry (row i, col j). The zero matrix is never a valid state for any caller in
// this program (it is not invertible, and is reserved as the "empty slot" sentinel
// by pkg/lockfreeset), but bitmatrix itself places no such restriction on its
// inputs.
//
// A Perm is a bijection on {0,...,N-1} stored as N significant bytes of a fixed
// 8-byte array. Composition follows standard right-to-left function composition,
// (p1∘p2)(i) := p1(p2(i)).
package bitmatrix
