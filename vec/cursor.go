// File: vec/cursor.go
// Author: momentics <momentics@gmail.com>
//
// Non-owning cursor over a half-open run [start, end) of initialized
// slots. Shrinks from either side; each slot is yielded at most once
// no matter how the two directions interleave.

package vec

import "unsafe"

type rawCursor[T any] struct {
	start, end unsafe.Pointer
	// Remaining count for zero-sized element types, whose "addresses"
	// are an opaque counter rather than real memory.
	zst int
}

func newCursor[T any](ptr unsafe.Pointer, n int) rawCursor[T] {
	size := sizeOf[T]()
	if size == 0 {
		return rawCursor[T]{start: ptr, end: ptr, zst: n}
	}
	return rawCursor[T]{start: ptr, end: unsafe.Add(ptr, uintptr(n)*size)}
}

// next moves the front element out and advances start.
func (c *rawCursor[T]) next() (T, bool) {
	var v T
	if sizeOf[T]() == 0 {
		if c.zst == 0 {
			return v, false
		}
		c.zst--
		return v, true
	}
	if c.start == c.end {
		return v, false
	}
	v = *(*T)(c.start)
	c.start = unsafe.Add(c.start, sizeOf[T]())
	return v, true
}

// nextBack retreats end first, then moves the new back element out.
func (c *rawCursor[T]) nextBack() (T, bool) {
	var v T
	if sizeOf[T]() == 0 {
		if c.zst == 0 {
			return v, false
		}
		c.zst--
		return v, true
	}
	if c.start == c.end {
		return v, false
	}
	c.end = unsafe.Add(c.end, -int(sizeOf[T]()))
	v = *(*T)(c.end)
	return v, true
}

// remaining reports how many slots are still unyielded.
func (c *rawCursor[T]) remaining() int {
	size := sizeOf[T]()
	if size == 0 {
		return c.zst
	}
	return int((uintptr(c.end) - uintptr(c.start)) / size)
}
