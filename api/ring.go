// File: api/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded FIFO ring contract shared by all buffer implementations.

package api

// Ring is a bounded FIFO buffer contract.
//
// Both operations are non-blocking: a full buffer rejects Push and an
// empty buffer rejects Pop immediately. Callers layer their own retry or
// backoff policy on top.
type Ring[T any] interface {
	// Push adds an item, returns false if full.
	Push(item T) bool
	// Pop removes the oldest item, returns false if empty.
	Pop() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns fixed buffer capacity.
	Cap() int
}
