package alloc

import (
	"github.com/TeshanK/memory-allocator/internal/format"
)

// growHeap satisfies a request no existing free block could. last is the
// final free block the scan visited, or InvalidOffset when the list was
// empty.
//
// When last ends exactly at the break, the break is extended by just the
// shortfall and last is reclassified as the allocated result, growing the
// heap's free tail in place instead of stranding it behind a fresh region.
// Otherwise a fresh region of size plus one header is requested and given
// a new allocated header. Break-primitive failures propagate with the heap
// unchanged. Returns the header offset of the allocated block.
func (a *Allocator) growHeap(size, last int64) (int64, error) {
	a.stats.GrowCalls++
	data := a.h.Bytes()

	if last != format.InvalidOffset && format.BlockEnd(data, last) == a.h.Break() {
		delta := size - format.BlockSize(data, last)
		if _, err := a.h.Extend(delta); err != nil {
			return format.InvalidOffset, err
		}
		a.stats.ExtendInPlace++
		a.stats.GrowBytes += delta
		debugLogf("grow: extended tail block %#x in place by %d bytes", last, delta)

		format.SetBlockSize(data, last, size)
		a.removeBlock(last)
		return last, nil
	}

	off, err := a.h.Extend(size + format.HeaderSize)
	if err != nil {
		return format.InvalidOffset, err
	}
	a.stats.GrowBytes += size + format.HeaderSize
	debugLogf("grow: fresh region %#x, %d payload bytes", off, size)

	format.SetBlockSize(data, off, size)
	format.SetBlockAllocated(data, off, true)
	format.SetBlockPrev(data, off, format.InvalidOffset)
	format.SetBlockNext(data, off, format.InvalidOffset)
	return off, nil
}
