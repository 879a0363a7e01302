// File: vec/rawbuf.go
// Package vec
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Owned raw buffer: allocation, doubling growth, exactly-once release.
// Never initializes or destroys elements; that is the vector's job.

package vec

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/momentics/rawvec/api"
)

// danglingByte anchors the sentinel address used while no allocation
// exists. Non-nil, aligned for any type, never dereferenced at cap 0.
var danglingByte byte

func dangling() unsafe.Pointer { return unsafe.Pointer(&danglingByte) }

// rawBuf owns one untyped block sized for cap elements of T.
type rawBuf[T any] struct {
	ptr   unsafe.Pointer
	cap   int
	alloc api.Allocator
}

func sizeOf[T any]() uintptr {
	var z T
	return unsafe.Sizeof(z)
}

func alignOf[T any]() uintptr {
	var z T
	return unsafe.Alignof(z)
}

// newRawBuf returns an empty buffer; no allocation happens until grow.
// Zero-sized element types get the full address space as capacity and
// never allocate at all.
func newRawBuf[T any](a api.Allocator) rawBuf[T] {
	c := 0
	if sizeOf[T]() == 0 {
		c = math.MaxInt
	}
	return rawBuf[T]{ptr: dangling(), cap: c, alloc: a}
}

// grow doubles capacity, starting at one. Allocation failure is fatal.
func (b *rawBuf[T]) grow() {
	size, align := sizeOf[T](), alignOf[T]()
	if size == 0 {
		// Capacity is already the whole address space; getting here
		// means the element counter overflowed.
		panic("rawvec: capacity overflow")
	}

	var (
		ptr    unsafe.Pointer
		newCap int
		err    error
	)
	if b.cap == 0 {
		newCap = 1
		var layout api.Layout
		layout, err = api.LayoutFor(size, align, newCap)
		if err == nil {
			ptr, err = b.alloc.Allocate(layout)
		}
	} else {
		newCap = b.cap * 2
		old, lerr := api.LayoutFor(size, align, b.cap)
		if lerr != nil {
			panic(fmt.Sprintf("rawvec: %v", lerr))
		}
		if _, err = api.LayoutFor(size, align, newCap); err == nil {
			ptr, err = b.alloc.Resize(b.ptr, old, size*uintptr(newCap))
		}
	}
	if err != nil {
		panic(fmt.Sprintf("rawvec: %v", err))
	}
	b.ptr = ptr
	b.cap = newCap
}

// release returns the block to the allocator. No-op for empty buffers
// and zero-sized element types; safe to call again afterwards.
func (b *rawBuf[T]) release() {
	size, align := sizeOf[T](), alignOf[T]()
	if b.cap == 0 || size == 0 {
		return
	}
	layout, err := api.LayoutFor(size, align, b.cap)
	if err != nil {
		panic(fmt.Sprintf("rawvec: %v", err))
	}
	b.alloc.Deallocate(b.ptr, layout)
	b.ptr = dangling()
	b.cap = 0
}

// slot returns the address of element i. For zero-sized types every
// slot is the sentinel.
func (b *rawBuf[T]) slot(i int) unsafe.Pointer {
	return unsafe.Add(b.ptr, uintptr(i)*sizeOf[T]())
}
