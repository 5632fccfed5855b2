// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// ring_test.go — contract tests for the locked ring buffer.
package concurrency

import (
	"testing"
)

func TestLockedRing_CapacityLaw(t *testing.T) {
	const capacity = 20
	r := NewLockedRing[int](capacity)
	for i := 0; i < capacity; i++ {
		if !r.Push(i) {
			t.Fatalf("Push %d failed below capacity", i)
		}
	}
	if r.Push(capacity) {
		t.Fatal("Push succeeded on full ring")
	}
	if got := r.Len(); got != capacity {
		t.Fatalf("Len = %d, want %d", got, capacity)
	}
	if _, ok := r.Pop(); !ok {
		t.Fatal("Pop failed on full ring")
	}
	if !r.Push(capacity) {
		t.Fatal("Push failed right after one Pop freed a slot")
	}
}

func TestLockedRing_FIFO(t *testing.T) {
	r := NewLockedRing[int](16)
	for i := 0; i < 10; i++ {
		if !r.Push(i) {
			t.Fatalf("Push %d failed", i)
		}
	}
	for i := 0; i < 10; i++ {
		v, ok := r.Pop()
		if !ok || v != i {
			t.Fatalf("Pop = %d (ok=%v), want %d", v, ok, i)
		}
	}
}

func TestLockedRing_PopEmpty(t *testing.T) {
	r := NewLockedRing[string](4)
	v, ok := r.Pop()
	if ok || v != "" {
		t.Fatalf("Pop on empty = %q (ok=%v), want zero value and false", v, ok)
	}
}

func TestLockedRing_ReusableAcrossWraps(t *testing.T) {
	r := NewLockedRing[int](4)
	// Many full fill/drain cycles exercise wraparound repeatedly.
	next := 0
	for cycle := 0; cycle < 10; cycle++ {
		for i := 0; i < 4; i++ {
			if !r.Push(next + i) {
				t.Fatalf("cycle %d: Push failed", cycle)
			}
		}
		for i := 0; i < 4; i++ {
			v, ok := r.Pop()
			if !ok || v != next+i {
				t.Fatalf("cycle %d: Pop = %d (ok=%v), want %d", cycle, v, ok, next+i)
			}
		}
		next += 4
	}
}

func TestLockedRing_WrapResetOnEmpty(t *testing.T) {
	r := NewLockedRing[int](4)
	for cycle := 0; cycle < 3; cycle++ {
		for i := 0; i < 4; i++ {
			r.Push(i)
		}
		for i := 0; i < 4; i++ {
			r.Pop()
		}
	}
	if w := r.Begin().Wrap(); w != 0 {
		t.Errorf("read wrap = %d after draining, want 0", w)
	}
	if w := r.End().Wrap(); w != 0 {
		t.Errorf("write wrap = %d after draining, want 0", w)
	}
	if r.Begin() != r.End() {
		t.Error("cursors differ on empty ring")
	}
	// A failed Pop on the already-empty ring also leaves the counters at 0.
	r.Pop()
	if r.Begin().Wrap() != 0 || r.End().Wrap() != 0 {
		t.Error("wrap counters nonzero after Pop on empty")
	}
}

func TestLockedRing_DistanceBounds(t *testing.T) {
	r := NewLockedRing[int](8)
	check := func() {
		d := Distance(r.Begin(), r.End())
		if d < 0 || d > r.Cap() {
			t.Fatalf("Distance = %d, outside [0, %d]", d, r.Cap())
		}
		if d != r.Len() {
			t.Fatalf("Distance = %d but Len = %d", d, r.Len())
		}
	}
	check()
	for i := 0; i < 30; i++ {
		r.Push(i)
		check()
		if i%3 == 0 {
			r.Pop()
			check()
		}
	}
}

func TestLockedRing_InvalidCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for capacity 0")
		}
	}()
	NewLockedRing[int](0)
}

func TestLockedRing_CapacityOne(t *testing.T) {
	r := NewLockedRing[int](1)
	if !r.Push(42) {
		t.Fatal("Push failed on empty capacity-1 ring")
	}
	if r.Push(43) {
		t.Fatal("Push succeeded on full capacity-1 ring")
	}
	v, ok := r.Pop()
	if !ok || v != 42 {
		t.Fatalf("Pop = %d (ok=%v), want 42", v, ok)
	}
	if _, ok := r.Pop(); ok {
		t.Fatal("Pop succeeded on drained ring")
	}
}
