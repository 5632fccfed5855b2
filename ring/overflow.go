// File: ring/overflow.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Overflow layers an unbounded backlog behind the bounded ring so bursty
// producers never see a rejected push. FIFO order holds across both
// stages: once anything sits in the backlog, new pushes append to it.

package ring

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/lockring/api"
	"github.com/momentics/lockring/internal/concurrency"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Overflow[any])(nil)

// Overflow is a two-stage FIFO: a bounded ring in front of an unbounded
// backlog queue. Push always succeeds; Pop drains the ring first and
// refills it from the backlog.
type Overflow[T any] struct {
	mu      sync.Mutex
	ring    *concurrency.LockedRing[T]
	backlog *queue.Queue
}

// NewOverflow allocates an overflow ring whose bounded stage has the
// given capacity. Panics if capacity is not positive.
func NewOverflow[T any](capacity int) *Overflow[T] {
	return &Overflow[T]{
		ring:    concurrency.NewLockedRing[T](capacity),
		backlog: queue.New(),
	}
}

// Push adds an item. It never reports full: when the ring is full, or
// older items are already queued behind it, the item goes to the backlog.
func (o *Overflow[T]) Push(item T) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.backlog.Length() == 0 && o.ring.Push(item) {
		return true
	}
	o.backlog.Add(item)
	return true
}

// Pop removes and returns the oldest item across both stages; ok is
// false only when ring and backlog are both empty.
func (o *Overflow[T]) Pop() (T, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.refill()
	return o.ring.Pop()
}

// Len returns the total number of items across ring and backlog.
func (o *Overflow[T]) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.ring.Len() + o.backlog.Length()
}

// Cap returns the capacity of the bounded stage. The backlog is
// unbounded, so this is not an upper bound on Len.
func (o *Overflow[T]) Cap() int {
	return o.ring.Cap()
}

// refill moves backlog items into the ring while space remains. Caller
// holds o.mu, so stage order is stable.
func (o *Overflow[T]) refill() {
	for o.backlog.Length() > 0 {
		if !o.ring.Push(o.backlog.Peek().(T)) {
			return
		}
		o.backlog.Remove()
	}
}
