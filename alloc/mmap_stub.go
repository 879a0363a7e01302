//go:build !linux
// +build !linux

// File: alloc/mmap_stub.go
// Author: momentics <momentics@gmail.com>
//
// Non-Linux fallback: the mmap constructors delegate to the heap
// allocator so callers stay portable.

package alloc

import "github.com/momentics/rawvec/api"

// NewMmap falls back to the heap allocator on platforms without the
// mmap/mremap path.
func NewMmap() api.Allocator { return NewHeap() }

// NewSystem returns the best allocator for the platform.
func NewSystem() api.Allocator { return NewHeap() }
