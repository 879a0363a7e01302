// File: vec/iter.go
// Author: momentics <momentics@gmail.com>
//
// Consuming iterator: owns the buffer it walks, yields elements by
// value from either end, and guarantees cleanup of whatever the
// caller never asked for.

package vec

// IntoIter owns a former vector's buffer and yields its elements by
// value. Obtain one with Vec.IntoIter. Release must be called when
// iteration stops, exhausted or not; unyielded elements are dropped
// and the buffer is returned to the allocator.
type IntoIter[T any] struct {
	buf      rawBuf[T]
	cur      rawCursor[T]
	drop     func(T)
	released bool
}

// Next yields the next element from the front.
func (it *IntoIter[T]) Next() (T, bool) {
	if it.released {
		var zero T
		return zero, false
	}
	return it.cur.next()
}

// NextBack yields the next element from the back. Front and back
// consumption may interleave; each element is yielded exactly once.
func (it *IntoIter[T]) NextBack() (T, bool) {
	if it.released {
		var zero T
		return zero, false
	}
	return it.cur.nextBack()
}

// Remaining reports how many elements are still unyielded.
func (it *IntoIter[T]) Remaining() int {
	if it.released {
		return 0
	}
	return it.cur.remaining()
}

// Release drops every unyielded element, then frees the buffer.
// Idempotent.
func (it *IntoIter[T]) Release() {
	if it.released {
		return
	}
	it.released = true
	for {
		x, ok := it.cur.next()
		if !ok {
			break
		}
		if it.drop != nil {
			it.drop(x)
		}
	}
	it.buf.release()
}
