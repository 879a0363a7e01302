// File: vec/vec.go
// Package vec
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The vector proper: mutation API over an owned raw buffer.

package vec

import (
	"fmt"
	"unsafe"

	"github.com/momentics/rawvec/alloc"
	"github.com/momentics/rawvec/api"
)

// Vec is a growable contiguous sequence of T backed by raw allocator
// memory. Not safe for concurrent use; a Vec has exactly one owner.
type Vec[T any] struct {
	buf  rawBuf[T]
	len  int
	drop func(T)
}

// Option customizes vector construction.
type Option[T any] func(*Vec[T])

// WithDrop installs a hook run once for every element the vector
// discards without handing it to the caller: on Release, and when an
// iterator over the vector is abandoned early.
func WithDrop[T any](fn func(T)) Option[T] {
	return func(v *Vec[T]) { v.drop = fn }
}

// New creates an empty vector using allocator a. A nil allocator
// selects the process-wide default. No memory is allocated until the
// first growth.
func New[T any](a api.Allocator, opts ...Option[T]) *Vec[T] {
	if a == nil {
		a = alloc.Default()
	}
	v := &Vec[T]{buf: newRawBuf[T](a)}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Len reports the number of live elements.
func (v *Vec[T]) Len() int { return v.len }

// Cap reports how many elements fit before the next growth.
func (v *Vec[T]) Cap() int { return v.buf.cap }

// Push appends x. Grows the buffer when full; cannot otherwise fail.
func (v *Vec[T]) Push(x T) {
	if v.len == v.buf.cap {
		v.buf.grow()
	}
	*(*T)(v.buf.slot(v.len)) = x
	v.len++
}

// Pop removes and returns the last element. The second result is false
// on an empty vector, the only non-fatal failure in the API.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.len == 0 {
		return zero, false
	}
	v.len--
	return *(*T)(v.buf.slot(v.len)), true
}

// Insert places x at index i, shifting [i, Len) one slot right.
// i may equal Len, which appends. Any other out-of-range index panics.
func (v *Vec[T]) Insert(i int, x T) {
	if i < 0 || i > v.len {
		panic(fmt.Sprintf("rawvec: insert index %d out of range [0, %d]", i, v.len))
	}
	if v.len == v.buf.cap {
		v.buf.grow()
	}
	if n := v.len - i; n > 0 {
		// copy has memmove semantics, so the overlapping shift is safe.
		src := unsafe.Slice((*T)(v.buf.slot(i)), n)
		dst := unsafe.Slice((*T)(v.buf.slot(i+1)), n)
		copy(dst, src)
	}
	*(*T)(v.buf.slot(i)) = x
	v.len++
}

// Remove takes the element at index i out, shifting (i, Len) one slot
// left to close the gap, and returns it. Out-of-range i panics;
// removing past the end is meaningless, so i must be strictly below
// Len.
func (v *Vec[T]) Remove(i int) T {
	if i < 0 || i >= v.len {
		panic(fmt.Sprintf("rawvec: remove index %d out of range [0, %d)", i, v.len))
	}
	x := *(*T)(v.buf.slot(i))
	v.len--
	if n := v.len - i; n > 0 {
		src := unsafe.Slice((*T)(v.buf.slot(i+1)), n)
		dst := unsafe.Slice((*T)(v.buf.slot(i)), n)
		copy(dst, src)
	}
	return x
}

// Slice exposes the live elements [0, Len) as an ordinary mutable
// slice without transferring ownership. The slice is invalidated by
// any operation that grows, shrinks, or releases the vector.
func (v *Vec[T]) Slice() []T {
	return unsafe.Slice((*T)(v.buf.ptr), v.len)
}

// Release destroys the vector: every live element's drop hook runs
// exactly once, last index first, then the buffer goes back to the
// allocator. Safe to call more than once; later calls are no-ops.
func (v *Vec[T]) Release() {
	for {
		x, ok := v.Pop()
		if !ok {
			break
		}
		if v.drop != nil {
			v.drop(x)
		}
	}
	v.buf.release()
}

// IntoIter transfers ownership of the buffer and all live elements to
// a consuming iterator. The vector is emptied and must be treated as
// moved-from: it no longer has anything to destroy, and reusing it
// starts a fresh empty vector on the same allocator.
func (v *Vec[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{
		buf:  v.buf,
		cur:  newCursor[T](v.buf.ptr, v.len),
		drop: v.drop,
	}
	v.buf = newRawBuf[T](v.buf.alloc)
	v.len = 0
	return it
}

// Drain borrows the vector and removes all live elements through the
// returned iterator. The length drops to zero immediately, so
// abandoning the drain can never double-destroy: slots the cursor
// still covers belong to the drain alone until its Release. The
// vector keeps its capacity and is reusable once the drain is done.
// No other use of the vector is permitted while the drain is live.
func (v *Vec[T]) Drain() *Drain[T] {
	d := &Drain[T]{
		vec:  v,
		cur:  newCursor[T](v.buf.ptr, v.len),
		drop: v.drop,
	}
	v.len = 0
	return d
}
