// File: alloc/recycle.go
// Package alloc
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Free-list layer over any api.Allocator. Doubling containers free a
// block of size N and immediately ask for 2N; sibling containers then
// reuse the N block instead of going back to the underlying allocator.

package alloc

import (
	"sync"
	"unsafe"

	"github.com/eapache/queue"

	"github.com/momentics/rawvec/api"
)

// RecyclingAllocator caches deallocated blocks in per-size FIFO queues
// and serves them back for exact-size requests.
type RecyclingAllocator struct {
	inner api.Allocator

	mu    sync.Mutex
	free  map[uintptr]*queue.Queue // block size -> freed blocks
	limit int                      // max cached blocks per size class
}

type freeBlock struct {
	ptr    unsafe.Pointer
	layout api.Layout
}

const defaultClassLimit = 64

// NewRecycling wraps inner with free lists holding at most limit blocks
// per size class. limit <= 0 selects the default.
func NewRecycling(inner api.Allocator, limit int) *RecyclingAllocator {
	if limit <= 0 {
		limit = defaultClassLimit
	}
	return &RecyclingAllocator{
		inner: inner,
		free:  make(map[uintptr]*queue.Queue),
		limit: limit,
	}
}

// Allocate serves a cached block of the exact size when one is
// available, falling back to the underlying allocator.
func (r *RecyclingAllocator) Allocate(layout api.Layout) (unsafe.Pointer, error) {
	r.mu.Lock()
	if q, ok := r.free[layout.Size]; ok && q.Length() > 0 {
		blk := q.Remove().(freeBlock)
		r.mu.Unlock()
		if blk.layout.Align >= layout.Align {
			return blk.ptr, nil
		}
		// Cached block is under-aligned for this request; let it go.
		r.inner.Deallocate(blk.ptr, blk.layout)
	} else {
		r.mu.Unlock()
	}
	return r.inner.Allocate(layout)
}

// Resize bypasses the cache: the block is live, so only the underlying
// allocator can move it.
func (r *RecyclingAllocator) Resize(ptr unsafe.Pointer, old api.Layout, newSize uintptr) (unsafe.Pointer, error) {
	return r.inner.Resize(ptr, old, newSize)
}

// Deallocate parks the block on its size-class queue, releasing it for
// real once the class is full.
func (r *RecyclingAllocator) Deallocate(ptr unsafe.Pointer, layout api.Layout) {
	r.mu.Lock()
	q, ok := r.free[layout.Size]
	if !ok {
		q = queue.New()
		r.free[layout.Size] = q
	}
	if q.Length() < r.limit {
		q.Add(freeBlock{ptr: ptr, layout: layout})
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	r.inner.Deallocate(ptr, layout)
}

// Release returns every cached block to the underlying allocator.
func (r *RecyclingAllocator) Release() {
	r.mu.Lock()
	var pending []freeBlock
	for _, q := range r.free {
		for q.Length() > 0 {
			pending = append(pending, q.Remove().(freeBlock))
		}
	}
	r.free = make(map[uintptr]*queue.Queue)
	r.mu.Unlock()

	for _, blk := range pending {
		r.inner.Deallocate(blk.ptr, blk.layout)
	}
}

// Cached reports the number of blocks currently parked on free lists.
func (r *RecyclingAllocator) Cached() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, q := range r.free {
		n += q.Length()
	}
	return n
}

// Stats passes through the underlying allocator's accounting when it
// keeps any.
func (r *RecyclingAllocator) Stats() api.AllocStats {
	if sp, ok := r.inner.(api.StatsProvider); ok {
		return sp.Stats()
	}
	return api.AllocStats{}
}

var _ api.Allocator = (*RecyclingAllocator)(nil)
var _ api.StatsProvider = (*RecyclingAllocator)(nil)
