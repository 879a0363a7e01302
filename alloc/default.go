// File: alloc/default.go
// Author: momentics <momentics@gmail.com>

package alloc

import (
	"sync"

	"github.com/momentics/rawvec/api"
)

var (
	defaultOnce  sync.Once
	defaultAlloc api.Allocator
)

// Default returns a process-wide allocator so all vectors share one
// free-list layer instead of fragmenting allocations.
func Default() api.Allocator {
	defaultOnce.Do(func() {
		defaultAlloc = NewRecycling(NewHeap(), defaultClassLimit)
	})
	return defaultAlloc
}
