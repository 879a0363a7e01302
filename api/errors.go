// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for rawvec allocators.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrOutOfMemory    = fmt.Errorf("out of memory")
	ErrLayoutOverflow = fmt.Errorf("allocation layout overflows address space")
	ErrInvalidPointer = fmt.Errorf("pointer does not identify a live allocation")
)
