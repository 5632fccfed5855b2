// File: internal/concurrency/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// LockedRing is a bounded FIFO ring buffer guarded by a single mutex.
// One coarse lock serializes every push and pop, trading throughput for
// a contract that holds under any mix of producers and consumers.
// Implements api.Ring for cross-package consistency.

package concurrency

import (
	"sync"

	"github.com/momentics/lockring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*LockedRing[any])(nil)

// LockedRing is a fixed-capacity concurrent ring buffer.
//
// The read and write cursors satisfy
// read.Linear() <= write.Linear() <= read.Linear()+Cap() at all times;
// the buffer is empty iff the cursors are equal and full iff the linear
// gap equals the capacity. All cursor and slot access happens under the
// lock; there is no lock-free read path.
type LockedRing[T any] struct {
	mu    sync.Mutex
	slots []T
	read  Cursor
	write Cursor
}

// NewLockedRing allocates a ring of the given capacity. Capacity may be
// any positive integer; it is fixed for the life of the ring.
func NewLockedRing[T any](capacity int) *LockedRing[T] {
	if capacity < 1 {
		panic("lockring: capacity must be positive")
	}
	return &LockedRing[T]{
		slots: make([]T, capacity),
		read:  newCursor(uint64(capacity)),
		write: newCursor(uint64(capacity)),
	}
}

// Push stores item at the write cursor and advances it. Returns false
// without mutating anything when the ring is full. Never blocks.
func (r *LockedRing[T]) Push(item T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.write.Linear() >= r.read.Linear()+uint64(len(r.slots)) {
		return false
	}
	r.slots[r.write.pos] = item
	r.write.advance()
	return true
}

// Pop returns the item at the read cursor and advances it. Returns ok
// false when the ring is empty. Never blocks.
//
// Whenever the ring is observed empty the wrap counters of both cursors
// reset to zero, bounding counter growth across drain cycles. Cursor
// snapshots taken before the reset are not comparable with ones taken
// after it.
func (r *LockedRing[T]) Pop() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.read == r.write {
		r.resetWrap()
		var zero T
		return zero, false
	}
	item := r.slots[r.read.pos]
	var zero T
	r.slots[r.read.pos] = zero // drop the reference for GC
	r.read.advance()
	if r.read == r.write {
		r.resetWrap()
	}
	return item, true
}

// Begin returns a snapshot of the read cursor.
func (r *LockedRing[T]) Begin() Cursor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read
}

// End returns a snapshot of the write cursor.
func (r *LockedRing[T]) End() Cursor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write
}

// Len returns the current occupancy, Distance(read, write), under a
// single lock acquisition.
func (r *LockedRing[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Distance(r.read, r.write)
}

// Cap returns the fixed ring capacity.
func (r *LockedRing[T]) Cap() int {
	return len(r.slots)
}

// resetWrap zeroes both wrap counters. Caller holds the lock and has
// established that the ring is empty, so the cursors stay equal.
func (r *LockedRing[T]) resetWrap() {
	r.read.wrap = 0
	r.write.wrap = 0
}
