// File: fake/droplog.go
// Author: momentics <momentics@gmail.com>
//
// Drop log for verifying element destruction order and counts.

package fake

import "sync"

// DropLog records drop-hook invocations.
type DropLog[T comparable] struct {
	mu    sync.Mutex
	order []T
}

// NewDropLog creates an empty log.
func NewDropLog[T comparable]() *DropLog[T] {
	return &DropLog[T]{}
}

// Hook returns a drop function that records each dropped value.
func (l *DropLog[T]) Hook() func(T) {
	return func(v T) {
		l.mu.Lock()
		l.order = append(l.order, v)
		l.mu.Unlock()
	}
}

// Order returns the dropped values in drop order.
func (l *DropLog[T]) Order() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.order))
	copy(out, l.order)
	return out
}

// Count reports how many times v was dropped.
func (l *DropLog[T]) Count(v T) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, x := range l.order {
		if x == v {
			n++
		}
	}
	return n
}

// Len reports the total number of drops.
func (l *DropLog[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}
