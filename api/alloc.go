// File: api/alloc.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Raw memory allocation boundary for rawvec.

package api

import "unsafe"

// Layout describes a single raw allocation request: total size in bytes
// and the required alignment (a power of two, at least 1).
type Layout struct {
	Size  uintptr
	Align uintptr
}

// LayoutFor computes the layout of a contiguous array of n elements
// with the given element size and alignment. Returns ErrLayoutOverflow
// if the total size does not fit in a uintptr.
func LayoutFor(elemSize, elemAlign uintptr, n int) (Layout, error) {
	if elemAlign == 0 {
		elemAlign = 1
	}
	if n < 0 {
		return Layout{}, ErrLayoutOverflow
	}
	if elemSize != 0 && uintptr(n) > ^uintptr(0)/elemSize {
		return Layout{}, ErrLayoutOverflow
	}
	return Layout{Size: elemSize * uintptr(n), Align: elemAlign}, nil
}

// Allocator is the external collaborator rawvec obtains memory from.
//
// All methods operate on untyped blocks identified by the pointer
// returned from Allocate or Resize together with the layout used to
// obtain them. The memory is uninitialized; the allocator never reads
// or interprets block contents except to move them during Resize.
//
// Blocks are invisible to the garbage collector's pointer scan, so
// callers must not store values containing Go pointers in them.
type Allocator interface {
	// Allocate returns a block of at least layout.Size bytes aligned to
	// layout.Align, or an error when memory is exhausted.
	Allocate(layout Layout) (unsafe.Pointer, error)

	// Resize grows or shrinks the block previously obtained with old,
	// preserving min(old.Size, newSize) bytes of contents. The block may
	// move; the returned pointer supersedes ptr, which must not be used
	// afterwards. Alignment is carried over from old.
	Resize(ptr unsafe.Pointer, old Layout, newSize uintptr) (unsafe.Pointer, error)

	// Deallocate releases the block. ptr and layout must match a live
	// allocation exactly; anything else is a caller bug and panics.
	Deallocate(ptr unsafe.Pointer, layout Layout)
}

// AllocStats aggregates allocation accounting for observability.
type AllocStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	BytesInUse int64
}

// StatsProvider is implemented by allocators that keep accounting.
type StatsProvider interface {
	Stats() AllocStats
}
