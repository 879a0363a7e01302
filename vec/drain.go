// File: vec/drain.go
// Author: momentics <momentics@gmail.com>
//
// Draining iterator: removes and yields a vector's elements while the
// vector stays alive for reuse.

package vec

// Drain removes elements from a borrowed vector and yields them by
// value. The vector's length is already zero while a Drain is live;
// only its capacity survives. Release must be called when iteration
// stops, and it consumes (and drops) whatever the caller left behind.
//
// Next yields in index order, front to back; NextBack yields from the
// tail. The two may interleave, each element surfacing exactly once.
type Drain[T any] struct {
	vec      *Vec[T] // the borrowed container; keeps buffer and allocator live
	cur      rawCursor[T]
	drop     func(T)
	released bool
}

// Next yields the next element from the front.
func (d *Drain[T]) Next() (T, bool) {
	if d.released {
		var zero T
		return zero, false
	}
	return d.cur.next()
}

// NextBack yields the next element from the back.
func (d *Drain[T]) NextBack() (T, bool) {
	if d.released {
		var zero T
		return zero, false
	}
	return d.cur.nextBack()
}

// Remaining reports how many elements are still unyielded.
func (d *Drain[T]) Remaining() int {
	if d.released {
		return 0
	}
	return d.cur.remaining()
}

// Release finishes the drain: every unyielded element is moved out and
// dropped. The borrowed vector is empty afterwards but keeps its
// buffer. Idempotent.
func (d *Drain[T]) Release() {
	if d.released {
		return
	}
	d.released = true
	for {
		x, ok := d.cur.next()
		if !ok {
			break
		}
		if d.drop != nil {
			d.drop(x)
		}
	}
}
