// Package alloc
// Author: momentics <momentics@gmail.com>
//
// Concrete allocators behind the api.Allocator boundary.
// HeapAllocator carves aligned blocks out of Go-heap byte slices and is
// the portable default. MmapAllocator maps anonymous pages directly from
// the kernel on Linux (mremap gives true grow-in-place) with a heap
// fallback elsewhere. RecyclingAllocator layers FIFO free lists on top
// of any allocator to short-circuit the allocate/deallocate churn of
// growing containers.
//
// All blocks are untyped memory outside the garbage collector's pointer
// scan: do not store values containing Go pointers in them.
package alloc
