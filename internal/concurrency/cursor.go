// File: internal/concurrency/cursor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cursor gives a modulo-wrapping slot index a total order by pairing it
// with a wrap counter. The linear position pos + wrap*size never wraps,
// so cursors from the same ring compare and subtract like plain integers.

package concurrency

// Cursor tracks a position inside a fixed-size ring.
//
// The zero Cursor is only meaningful once produced by a ring; cursors
// from rings of different capacities are not comparable.
type Cursor struct {
	pos  uint64
	wrap uint64
	size uint64
}

// newCursor returns a cursor at slot 0, wrap 0 for a ring of the given size.
func newCursor(size uint64) Cursor {
	return Cursor{size: size}
}

// Pos returns the wrapped slot index, in [0, Size).
func (c Cursor) Pos() uint64 { return c.pos }

// Wrap returns how many times the cursor has passed the end of the ring.
func (c Cursor) Wrap() uint64 { return c.wrap }

// Size returns the ring capacity this cursor indexes into.
func (c Cursor) Size() uint64 { return c.size }

// Linear returns pos + wrap*size, a monotonically non-decreasing measure
// of total slots processed. Ordering and distance are defined on it.
func (c Cursor) Linear() uint64 {
	return c.pos + c.wrap*c.size
}

// advance moves the cursor one slot forward, wrapping at the end.
func (c *Cursor) advance() {
	c.pos++
	if c.pos >= c.size {
		c.pos = 0
		c.wrap++
	}
}

// Add returns a cursor k slots forward. Assumes k < Size, so at most one
// wrap occurs.
func (c Cursor) Add(k uint64) Cursor {
	out := c
	if c.pos+k >= c.size {
		out.wrap++
	}
	out.pos = (c.pos + k) % c.size
	return out
}

// Before reports whether c is strictly behind other in linear order.
func (c Cursor) Before(other Cursor) bool {
	return c.Linear() < other.Linear()
}

// AtOrBefore reports whether c is at or behind other in linear order.
func (c Cursor) AtOrBefore(other Cursor) bool {
	return c.Linear() <= other.Linear()
}

// Distance returns how many slots separate a from b, b being the later
// cursor. For a ring's (read, write) pair this is the occupancy, always
// in [0, capacity].
func Distance(a, b Cursor) int {
	return int(int64(b.Linear()) - int64(a.Linear()))
}
