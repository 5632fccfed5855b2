// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity concurrent FIFO ring buffers guarded by a single mutex.
//
// Buffer is the core primitive: non-blocking Push/Pop under one coarse
// lock, with read/write cursor snapshots (Begin/End) whose Distance gives
// the occupancy. The cursor pairs a wrapped slot index with a wrap
// counter, so cursors order totally by linear position even though the
// raw index wraps modulo the capacity. Wrap counters reset to zero each
// time the buffer drains empty, which bounds their growth but makes
// snapshots taken across an emptiness transition incomparable; a
// monotonic 64-bit sequence per side would avoid that at the cost of the
// reset semantics callers of Wrap() currently observe.
//
// Overflow layers an unbounded backlog behind a bounded ring for callers
// that prefer absorbing bursts over rejecting pushes.
package ring
