//go:build linux
// +build linux

// File: alloc/mmap_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux allocator over anonymous private mappings. Resize uses
// mremap(2) with MREMAP_MAYMOVE, so growth happens in place whenever
// the kernel can extend the mapping.

package alloc

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/momentics/rawvec/api"
)

// MmapAllocator obtains blocks straight from the kernel. Page
// granularity makes it wasteful for small blocks; it exists for large
// buffers and as the truthful rendering of a resize-in-place allocator.
type MmapAllocator struct {
	mu       sync.Mutex
	mappings map[unsafe.Pointer][]byte

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	bytesInUse atomic.Int64
}

// NewMmap creates an mmap-backed allocator.
func NewMmap() *MmapAllocator {
	return &MmapAllocator{mappings: make(map[unsafe.Pointer][]byte)}
}

// Allocate maps layout.Size bytes of anonymous memory. Page alignment
// satisfies any power-of-two alignment a layout can reasonably carry.
func (m *MmapAllocator) Allocate(layout api.Layout) (unsafe.Pointer, error) {
	if layout.Size == 0 {
		return nil, fmt.Errorf("%w: mmap of zero bytes", api.ErrLayoutOverflow)
	}
	data, err := unix.Mmap(-1, 0, int(layout.Size),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap: %v", api.ErrOutOfMemory, err)
	}
	ptr := unsafe.Pointer(unsafe.SliceData(data))

	m.mu.Lock()
	m.mappings[ptr] = data
	m.mu.Unlock()

	m.totalAlloc.Add(1)
	m.bytesInUse.Add(int64(layout.Size))
	return ptr, nil
}

// Resize remaps the block to newSize bytes, in place when the kernel
// permits, otherwise moved.
func (m *MmapAllocator) Resize(ptr unsafe.Pointer, old api.Layout, newSize uintptr) (unsafe.Pointer, error) {
	m.mu.Lock()
	data, ok := m.mappings[ptr]
	m.mu.Unlock()
	if !ok {
		return nil, api.ErrInvalidPointer
	}

	nd, err := unix.Mremap(data, int(newSize), unix.MREMAP_MAYMOVE)
	if err != nil {
		return nil, fmt.Errorf("%w: mremap: %v", api.ErrOutOfMemory, err)
	}
	np := unsafe.Pointer(unsafe.SliceData(nd))

	m.mu.Lock()
	delete(m.mappings, ptr)
	m.mappings[np] = nd
	m.mu.Unlock()

	m.bytesInUse.Add(int64(newSize) - int64(old.Size))
	return np, nil
}

// Deallocate unmaps the block.
func (m *MmapAllocator) Deallocate(ptr unsafe.Pointer, layout api.Layout) {
	m.mu.Lock()
	data, ok := m.mappings[ptr]
	if ok {
		delete(m.mappings, ptr)
	}
	m.mu.Unlock()
	if !ok {
		panic(fmt.Sprintf("rawvec/alloc: unmap of unknown pointer %p", ptr))
	}
	if err := unix.Munmap(data); err != nil {
		panic(fmt.Sprintf("rawvec/alloc: munmap: %v", err))
	}
	m.totalFree.Add(1)
	m.bytesInUse.Add(-int64(layout.Size))
}

// Stats reports allocation accounting.
func (m *MmapAllocator) Stats() api.AllocStats {
	ta := m.totalAlloc.Load()
	tf := m.totalFree.Load()
	return api.AllocStats{
		TotalAlloc: ta,
		TotalFree:  tf,
		InUse:      ta - tf,
		BytesInUse: m.bytesInUse.Load(),
	}
}

var _ api.Allocator = (*MmapAllocator)(nil)
var _ api.StatsProvider = (*MmapAllocator)(nil)

// NewSystem returns the best allocator for the platform: mmap on Linux.
func NewSystem() api.Allocator { return NewMmap() }
