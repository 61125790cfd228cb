package alloc

import (
	"github.com/TeshanK/memory-allocator/internal/format"
)

// Stats holds cumulative allocator counters for instrumentation and tests.
type Stats struct {
	MallocCalls  int64 // Malloc calls, including rejected requests
	FreeCalls    int64 // Free calls on non-nil references
	ReallocCalls int64 // Realloc calls

	GrowCalls     int64 // heap-growth decisions (either strategy)
	ExtendInPlace int64 // growths that extended the tail free block
	GrowBytes     int64 // bytes added past the break

	SplitCount       int64 // blocks split into request plus remainder
	CoalesceForward  int64 // merges with a following free block
	CoalesceBackward int64 // merges with a preceding free block

	BytesAllocated int64 // payload bytes handed out, including oversize slack
	BytesFreed     int64 // payload bytes returned
}

// InUse returns the payload bytes currently handed out.
func (s Stats) InUse() int64 { return s.BytesAllocated - s.BytesFreed }

// Stats returns a snapshot of the counters.
func (a *Allocator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// FreeList returns the current number of free blocks and their total
// payload bytes.
func (a *Allocator) FreeList() (blocks int, bytes int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.h == nil {
		return 0, 0
	}
	data := a.h.Bytes()
	for curr := a.head; curr != format.InvalidOffset; curr = format.BlockNext(data, curr) {
		blocks++
		bytes += format.BlockSize(data, curr)
	}
	return blocks, bytes
}
