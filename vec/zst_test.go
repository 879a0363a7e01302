// Copyright 2026 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// zst_test.go — zero-sized element types: no allocation ever, counting
// works through every operation and iterator.

package vec_test

import (
	"testing"

	"github.com/momentics/rawvec/fake"
	"github.com/momentics/rawvec/vec"
)

func TestZeroSizedNoAllocation(t *testing.T) {
	fa := fake.NewAllocator(nil)
	v := vec.New[struct{}](fa)

	for i := 0; i < 1000; i++ {
		v.Push(struct{}{})
	}
	if v.Len() != 1000 {
		t.Fatalf("Len = %d, want 1000", v.Len())
	}
	v.Release()

	if a, r, f := fa.Calls(); a != 0 || r != 0 || f != 0 {
		t.Errorf("zero-sized vector touched the allocator: %d/%d/%d calls", a, r, f)
	}
}

func TestZeroSizedPushPopInsertRemove(t *testing.T) {
	v := vec.New[struct{}](fake.NewAllocator(nil))
	defer v.Release()

	v.Push(struct{}{})
	v.Push(struct{}{})
	v.Insert(1, struct{}{})
	if v.Len() != 3 {
		t.Fatalf("Len = %d, want 3", v.Len())
	}
	v.Remove(0)
	if _, ok := v.Pop(); !ok {
		t.Fatal("Pop on non-empty zero-sized vector failed")
	}
	if v.Len() != 1 {
		t.Fatalf("Len = %d, want 1", v.Len())
	}
	if _, ok := v.Pop(); !ok {
		t.Fatal("final Pop failed")
	}
	if _, ok := v.Pop(); ok {
		t.Fatal("Pop on empty zero-sized vector succeeded")
	}
}

func TestZeroSizedIterators(t *testing.T) {
	v := vec.New[struct{}](fake.NewAllocator(nil))
	for i := 0; i < 5; i++ {
		v.Push(struct{}{})
	}

	d := v.Drain()
	if n := d.Remaining(); n != 5 {
		t.Fatalf("drain Remaining = %d, want 5", n)
	}
	count := 0
	for {
		if _, ok := d.Next(); !ok {
			break
		}
		count++
	}
	if count != 5 {
		t.Fatalf("drain yielded %d, want 5", count)
	}
	d.Release()

	for i := 0; i < 3; i++ {
		v.Push(struct{}{})
	}
	it := v.IntoIter()
	it.Next()
	it.NextBack()
	if n := it.Remaining(); n != 1 {
		t.Fatalf("Remaining = %d, want 1", n)
	}
	it.Release()
}

func TestZeroSizedDropCount(t *testing.T) {
	dropped := 0
	v := vec.New[struct{}](fake.NewAllocator(nil),
		vec.WithDrop[struct{}](func(struct{}) { dropped++ }))
	for i := 0; i < 4; i++ {
		v.Push(struct{}{})
	}
	v.Release()
	if dropped != 4 {
		t.Fatalf("dropped %d elements, want 4", dropped)
	}
}
