package alloc

import (
	"github.com/TeshanK/memory-allocator/internal/format"
)

// Free-list management. The list is doubly linked through the prev/next
// header fields and kept strictly sorted by header address. Insertion and
// coalescing are inseparable: no caller ever observes an un-coalesced
// adjacency between free blocks.

// insertBlock links the block at off into the address-sorted free list,
// coalesces it with any physically adjacent neighbors, and marks the
// surviving block free. Returns the surviving header offset, which may be
// an absorbing predecessor.
func (a *Allocator) insertBlock(off int64) int64 {
	data := a.h.Bytes()
	format.SetBlockPrev(data, off, format.InvalidOffset)
	format.SetBlockNext(data, off, format.InvalidOffset)

	if a.head == format.InvalidOffset {
		a.head = off
	} else {
		curr := a.head
		prev := format.InvalidOffset
		for curr != format.InvalidOffset && curr < off {
			prev = curr
			curr = format.BlockNext(data, curr)
		}

		switch {
		case prev == format.InvalidOffset:
			// Insert before head.
			format.SetBlockNext(data, off, a.head)
			format.SetBlockPrev(data, a.head, off)
			a.head = off
		case curr == format.InvalidOffset:
			// Insert at tail.
			format.SetBlockNext(data, prev, off)
			format.SetBlockPrev(data, off, prev)
		default:
			// Insert between prev and curr.
			format.SetBlockPrev(data, off, prev)
			format.SetBlockNext(data, off, curr)
			format.SetBlockNext(data, prev, off)
			format.SetBlockPrev(data, curr, off)
		}
	}

	off = a.coalesce(off)
	format.SetBlockAllocated(data, off, false)
	return off
}

// removeBlock unlinks the block at off from the free list, clears its
// links, and marks it allocated. Removing from an empty list or passing
// InvalidOffset is a no-op; the caller is responsible for only removing
// free blocks it found on the list.
func (a *Allocator) removeBlock(off int64) {
	if a.head == format.InvalidOffset || off == format.InvalidOffset {
		return
	}
	data := a.h.Bytes()

	if off == a.head {
		a.head = format.BlockNext(data, off)
		if a.head != format.InvalidOffset {
			format.SetBlockPrev(data, a.head, format.InvalidOffset)
		}
	} else {
		prev := format.BlockPrev(data, off)
		next := format.BlockNext(data, off)
		if next != format.InvalidOffset {
			format.SetBlockPrev(data, next, prev)
		}
		if prev != format.InvalidOffset {
			format.SetBlockNext(data, prev, next)
		}
	}

	format.SetBlockPrev(data, off, format.InvalidOffset)
	format.SetBlockNext(data, off, format.InvalidOffset)
	format.SetBlockAllocated(data, off, true)
}
