// Package api
// Author: momentics <momentics@gmail.com>
//
// Core interfaces and shared types for rawvec.
// Defines the narrow allocator boundary (allocate, resize, deallocate)
// that the vector core consumes, plus layout arithmetic, allocation
// statistics, and common errors.
// Implementations live in the alloc package; the vector itself never
// touches a concrete allocator.
package api
