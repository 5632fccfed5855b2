// File: ring/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public wrapper over the internal locked ring. Adds atomic operation
// counters so callers can publish throughput and rejection figures
// through control.MetricsRegistry without extra locking.

package ring

import (
	"sync/atomic"

	"github.com/momentics/lockring/api"
	"github.com/momentics/lockring/internal/concurrency"
)

// Cursor is a position-in-ring snapshot: a wrapped slot index paired
// with a wrap counter. See the concurrency package for its arithmetic.
type Cursor = concurrency.Cursor

// Distance returns the number of slots between two cursor snapshots,
// i.e. the occupancy when called with (Begin(), End()).
func Distance(a, b Cursor) int {
	return concurrency.Distance(a, b)
}

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Buffer[any])(nil)

// Buffer is a fixed-capacity concurrent FIFO ring buffer.
//
// Push and Pop never block: a full buffer rejects Push, an empty buffer
// rejects Pop, and the caller retries. All mutation is serialized by a
// single internal mutex.
type Buffer[T any] struct {
	ring *concurrency.LockedRing[T]

	pushes        atomic.Uint64
	pops          atomic.Uint64
	rejectedFull  atomic.Uint64
	rejectedEmpty atomic.Uint64
}

// Stats is a point-in-time snapshot of a buffer's operation counters.
type Stats struct {
	Pushes        uint64 // successful pushes
	Pops          uint64 // successful pops
	RejectedFull  uint64 // pushes refused because the ring was full
	RejectedEmpty uint64 // pops refused because the ring was empty
}

// New allocates a buffer with the given fixed capacity. Panics if
// capacity is not positive.
func New[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{ring: concurrency.NewLockedRing[T](capacity)}
}

// Push adds an item; returns false if the buffer is full.
func (b *Buffer[T]) Push(item T) bool {
	if b.ring.Push(item) {
		b.pushes.Add(1)
		return true
	}
	b.rejectedFull.Add(1)
	return false
}

// Pop removes and returns the oldest item; ok is false if the buffer is
// empty.
func (b *Buffer[T]) Pop() (T, bool) {
	item, ok := b.ring.Pop()
	if ok {
		b.pops.Add(1)
	} else {
		b.rejectedEmpty.Add(1)
	}
	return item, ok
}

// Begin returns a snapshot of the read cursor.
func (b *Buffer[T]) Begin() Cursor { return b.ring.Begin() }

// End returns a snapshot of the write cursor.
func (b *Buffer[T]) End() Cursor { return b.ring.End() }

// Len returns the current number of buffered items.
func (b *Buffer[T]) Len() int { return b.ring.Len() }

// Cap returns the fixed buffer capacity.
func (b *Buffer[T]) Cap() int { return b.ring.Cap() }

// Stats returns a snapshot of the operation counters.
func (b *Buffer[T]) Stats() Stats {
	return Stats{
		Pushes:        b.pushes.Load(),
		Pops:          b.pops.Load(),
		RejectedFull:  b.rejectedFull.Load(),
		RejectedEmpty: b.rejectedEmpty.Load(),
	}
}
