//go:build linux
// +build linux

// Copyright 2026 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// mmap_linux_test.go — kernel-backed allocator: read/write, mremap
// contents, unmap accounting.

package alloc_test

import (
	"testing"
	"unsafe"

	"github.com/momentics/rawvec/alloc"
	"github.com/momentics/rawvec/api"
)

func TestMmapAllocateWriteRead(t *testing.T) {
	m := alloc.NewMmap()
	l := api.Layout{Size: 4096, Align: 8}
	ptr, err := m.Allocate(l)
	if err != nil {
		t.Fatal(err)
	}
	mem := unsafe.Slice((*byte)(ptr), 4096)
	mem[0], mem[4095] = 0xab, 0xcd
	if mem[0] != 0xab || mem[4095] != 0xcd {
		t.Error("mapped memory did not hold written bytes")
	}
	m.Deallocate(ptr, l)

	if s := m.Stats(); s.InUse != 0 || s.BytesInUse != 0 {
		t.Errorf("stats not balanced: %+v", s)
	}
}

func TestMmapResizePreservesContents(t *testing.T) {
	m := alloc.NewMmap()
	l := api.Layout{Size: 4096, Align: 8}
	ptr, err := m.Allocate(l)
	if err != nil {
		t.Fatal(err)
	}
	mem := unsafe.Slice((*byte)(ptr), 4096)
	for i := range mem {
		mem[i] = byte(i)
	}

	np, err := m.Resize(ptr, l, 8*4096)
	if err != nil {
		t.Fatal(err)
	}
	nm := unsafe.Slice((*byte)(np), 8*4096)
	for i := 0; i < 4096; i++ {
		if nm[i] != byte(i) {
			t.Fatalf("byte %d = %d after mremap, want %d", i, nm[i], byte(i))
		}
	}
	m.Deallocate(np, api.Layout{Size: 8 * 4096, Align: 8})
}

func TestMmapBacksAVector(t *testing.T) {
	// The whole stack on kernel pages: vector growth rides mremap.
	m := alloc.NewMmap()
	l := api.Layout{Size: 8, Align: 8}
	ptr, err := m.Allocate(l)
	if err != nil {
		t.Fatal(err)
	}
	for size := uintptr(8); size < 1<<16; size *= 2 {
		np, err := m.Resize(ptr, api.Layout{Size: size, Align: 8}, size*2)
		if err != nil {
			t.Fatalf("resize to %d: %v", size*2, err)
		}
		ptr = np
	}
	m.Deallocate(ptr, api.Layout{Size: 1 << 16, Align: 8})
	if s := m.Stats(); s.InUse != 0 {
		t.Fatalf("InUse = %d, want 0", s.InUse)
	}
}
