// Package fake
// Author: momentics <momentics@gmail.com>
//
// Recording allocator and drop log for testing rawvec.

package fake

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/momentics/rawvec/alloc"
	"github.com/momentics/rawvec/api"
)

// Allocator wraps a real allocator and records every call, so tests
// can assert exactly-once release and spot leaks or double frees.
type Allocator struct {
	inner api.Allocator

	mu       sync.Mutex
	live     map[unsafe.Pointer]api.Layout
	allocs   int
	resizes  int
	frees    int
	failNext bool
}

// NewAllocator wraps inner; nil selects a fresh heap allocator.
func NewAllocator(inner api.Allocator) *Allocator {
	if inner == nil {
		inner = alloc.NewHeap()
	}
	return &Allocator{
		inner: inner,
		live:  make(map[unsafe.Pointer]api.Layout),
	}
}

// FailNext makes the next Allocate or Resize report ErrOutOfMemory.
func (f *Allocator) FailNext() {
	f.mu.Lock()
	f.failNext = true
	f.mu.Unlock()
}

func (f *Allocator) takeFailure() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext {
		f.failNext = false
		return true
	}
	return false
}

// Allocate records the call and delegates.
func (f *Allocator) Allocate(layout api.Layout) (unsafe.Pointer, error) {
	if f.takeFailure() {
		return nil, api.ErrOutOfMemory
	}
	ptr, err := f.inner.Allocate(layout)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.allocs++
	f.live[ptr] = layout
	f.mu.Unlock()
	return ptr, nil
}

// Resize records the call, checks the pointer is live, and delegates.
func (f *Allocator) Resize(ptr unsafe.Pointer, old api.Layout, newSize uintptr) (unsafe.Pointer, error) {
	if f.takeFailure() {
		return nil, api.ErrOutOfMemory
	}
	f.mu.Lock()
	if _, ok := f.live[ptr]; !ok {
		f.mu.Unlock()
		panic(fmt.Sprintf("fake: resize of unknown pointer %p", ptr))
	}
	f.mu.Unlock()

	np, err := f.inner.Resize(ptr, old, newSize)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.resizes++
	delete(f.live, ptr)
	f.live[np] = api.Layout{Size: newSize, Align: old.Align}
	f.mu.Unlock()
	return np, nil
}

// Deallocate records the call, panics on a double free, and delegates.
func (f *Allocator) Deallocate(ptr unsafe.Pointer, layout api.Layout) {
	f.mu.Lock()
	if _, ok := f.live[ptr]; !ok {
		f.mu.Unlock()
		panic(fmt.Sprintf("fake: double or stray free of %p", ptr))
	}
	delete(f.live, ptr)
	f.frees++
	f.mu.Unlock()
	f.inner.Deallocate(ptr, layout)
}

// Outstanding reports blocks allocated but never freed.
func (f *Allocator) Outstanding() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.live)
}

// Calls reports the number of Allocate, Resize and Deallocate calls.
func (f *Allocator) Calls() (allocs, resizes, frees int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.allocs, f.resizes, f.frees
}

var _ api.Allocator = (*Allocator)(nil)
