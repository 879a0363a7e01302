// Package vec
// Author: momentics <momentics@gmail.com>
//
// Growable contiguous vector built directly on a raw allocator.
//
// Vec owns one raw buffer plus a count of initialized slots. Slots
// [0, Len) hold live elements, slots [Len, Cap) are uninitialized
// memory that no operation ever reads. Capacity doubles on demand
// starting at one; allocator exhaustion and index contract violations
// are fatal panics, the only recoverable outcome is the empty result
// of Pop.
//
// An optional drop hook (WithDrop) stands in for element destructors:
// every path that discards an element without handing it to the caller
// runs the hook exactly once per element, including early abandonment
// of iterators. Elements move by value; a value yielded or returned is
// the caller's, and its slot is never touched again.
//
// Because element storage is raw allocator memory outside the garbage
// collector's pointer scan, element types must not contain Go pointers.
package vec
