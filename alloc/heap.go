// File: alloc/heap.go
// Package alloc
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Portable allocator backed by Go-heap byte slices.

package alloc

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/momentics/rawvec/api"
)

// HeapAllocator hands out manually aligned blocks carved from
// make([]byte, ...) backing slices. The blocks map pins every live
// backing slice against the garbage collector and lets Deallocate
// reject pointers it never issued.
type HeapAllocator struct {
	mu     sync.Mutex
	blocks map[unsafe.Pointer]heapBlock

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	bytesInUse atomic.Int64
}

type heapBlock struct {
	backing []byte
	size    uintptr
}

// NewHeap creates an empty heap allocator.
func NewHeap() *HeapAllocator {
	return &HeapAllocator{blocks: make(map[unsafe.Pointer]heapBlock)}
}

// Allocate returns a zeroed block satisfying layout.
func (h *HeapAllocator) Allocate(layout api.Layout) (unsafe.Pointer, error) {
	align := layout.Align
	if align == 0 {
		align = 1
	}
	if align&(align-1) != 0 {
		return nil, fmt.Errorf("%w: alignment %d is not a power of two", api.ErrLayoutOverflow, align)
	}
	if layout.Size > ^uintptr(0)-align {
		return nil, api.ErrLayoutOverflow
	}

	// Over-allocate by the alignment so an aligned start always exists.
	backing := make([]byte, layout.Size+align)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(backing)))
	off := (align - base%align) % align
	ptr := unsafe.Pointer(unsafe.SliceData(backing[off:]))

	h.mu.Lock()
	h.blocks[ptr] = heapBlock{backing: backing, size: layout.Size}
	h.mu.Unlock()

	h.totalAlloc.Add(1)
	h.bytesInUse.Add(int64(layout.Size))
	return ptr, nil
}

// Resize moves the block to a fresh allocation of newSize bytes,
// preserving min(old.Size, newSize) bytes. Heap blocks cannot grow in
// place.
func (h *HeapAllocator) Resize(ptr unsafe.Pointer, old api.Layout, newSize uintptr) (unsafe.Pointer, error) {
	h.mu.Lock()
	blk, ok := h.blocks[ptr]
	h.mu.Unlock()
	if !ok || blk.size != old.Size {
		return nil, api.ErrInvalidPointer
	}

	np, err := h.Allocate(api.Layout{Size: newSize, Align: old.Align})
	if err != nil {
		return nil, err
	}
	keep := old.Size
	if newSize < keep {
		keep = newSize
	}
	copy(unsafe.Slice((*byte)(np), keep), unsafe.Slice((*byte)(ptr), keep))
	h.Deallocate(ptr, old)
	return np, nil
}

// Deallocate releases a block. Freeing a pointer that is not live is a
// caller bug and panics.
func (h *HeapAllocator) Deallocate(ptr unsafe.Pointer, layout api.Layout) {
	h.mu.Lock()
	blk, ok := h.blocks[ptr]
	if ok {
		delete(h.blocks, ptr)
	}
	h.mu.Unlock()
	if !ok {
		panic(fmt.Sprintf("rawvec/alloc: deallocate of unknown pointer %p", ptr))
	}
	if blk.size != layout.Size {
		panic(fmt.Sprintf("rawvec/alloc: deallocate with mismatched layout: block %d bytes, layout says %d", blk.size, layout.Size))
	}
	h.totalFree.Add(1)
	h.bytesInUse.Add(-int64(blk.size))
}

// Stats reports allocation accounting.
func (h *HeapAllocator) Stats() api.AllocStats {
	ta := h.totalAlloc.Load()
	tf := h.totalFree.Load()
	return api.AllocStats{
		TotalAlloc: ta,
		TotalFree:  tf,
		InUse:      ta - tf,
		BytesInUse: h.bytesInUse.Load(),
	}
}

var _ api.Allocator = (*HeapAllocator)(nil)
var _ api.StatsProvider = (*HeapAllocator)(nil)
