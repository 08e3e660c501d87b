// Package lockfreeset implements a fixed-capacity, lock-free, open-addressed
// set of nonzero uint64 keys.
//
// The set is backed by a demand-paged anonymous memory mapping: slots that
// are never written never acquire physical backing, which matters because
// tables are typically sized generously and sparsely populated relative to
// their eventual occupancy. Insert-or-find is linearizable per key: of any
// number of concurrent callers inserting the same key, exactly one observes
// is_new=true and all of them agree on the returned slot index.
//
// # The empty sentinel
//
// Key 0 is reserved to mean "empty slot" and is never stored; Set.Insert and
// friends return ErrZeroKey if asked to store it. Slot 0 is never returned as a real
// slot either — a key that hashes to bucket 0 is folded forward to bucket 1
// before probing starts — because a caller reading back slot 0 could not
// distinguish "the key that lives here" from "this slot is empty". Both
// reservations are required together: a hash function satisfying
// Hasher.Hash(0) == 0 combined with the slot-0 rule is what makes "0 means
// empty" safe to check with a single relaxed load instead of a separate
// occupancy bit. An implementation that wanted to store key 0 would need a
// different empty-sentinel scheme entirely (a per-slot occupancy bit, or
// NaN-boxing); this package does not attempt that, since no caller in this
// program ever needs to store a zero key (the packed zero matrix is never a
// valid BFS state).
//
// # Concurrency contract
//
// Writers only ever perform a single CAS transition per slot, from the empty
// sentinel to a nonzero key; once a slot holds a nonzero key it is
// immutable for the table's lifetime. Reads use relaxed atomic loads. There
// is no tombstone state and no deletion - this table exists only to
// accumulate a frontier of a breadth-first search within one process run.
package lockfreeset
