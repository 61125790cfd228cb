package alloc

import (
	"github.com/TeshanK/memory-allocator/internal/format"
)

// splitBlock carves a request of size bytes out of the block at off, which
// the caller has already removed from the free list. The leftover past the
// request becomes a new free block and is reinserted (coalescing with any
// following free neighbor). A leftover smaller than MinSplitRemainder could
// never satisfy a future request, so the whole block is handed to the
// caller oversized instead. Returns the allocation target.
func (a *Allocator) splitBlock(off, size int64) int64 {
	data := a.h.Bytes()
	leftover := format.BlockSize(data, off) - size - format.HeaderSize
	if leftover < format.MinSplitRemainder {
		return off
	}
	a.stats.SplitCount++

	format.SetBlockSize(data, off, size)

	rem := off + format.HeaderSize + size
	format.SetBlockSize(data, rem, leftover)
	a.insertBlock(rem)

	return off
}
