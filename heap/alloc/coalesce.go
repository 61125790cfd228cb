package alloc

import (
	"github.com/TeshanK/memory-allocator/internal/format"
)

// coalesce merges the just-inserted free block at off with its physically
// adjacent free-list neighbors. Because the list is address sorted, the
// only merge candidates are the list neighbors, and a neighbor is adjacent
// exactly when the earlier block's end equals the later block's header.
// Both merges may apply, collapsing three blocks into one. Returns the
// surviving header offset.
//
// Merging is pure header algebra: the absorbed block's header bytes become
// part of the survivor's payload and its size is folded in along with one
// header's worth of bytes.
func (a *Allocator) coalesce(off int64) int64 {
	data := a.h.Bytes()
	next := format.BlockNext(data, off)
	prev := format.BlockPrev(data, off)

	if next != format.InvalidOffset && format.BlockEnd(data, off) == next {
		a.stats.CoalesceForward++
		nn := format.BlockNext(data, next)
		format.SetBlockNext(data, off, nn)
		format.SetBlockSize(data, off,
			format.BlockSize(data, off)+format.BlockSize(data, next)+format.HeaderSize)
		if nn != format.InvalidOffset {
			format.SetBlockPrev(data, nn, off)
		}
	}

	if prev != format.InvalidOffset && format.BlockEnd(data, prev) == off {
		a.stats.CoalesceBackward++
		n := format.BlockNext(data, off)
		format.SetBlockNext(data, prev, n)
		format.SetBlockSize(data, prev,
			format.BlockSize(data, prev)+format.BlockSize(data, off)+format.HeaderSize)
		if n != format.InvalidOffset {
			format.SetBlockPrev(data, n, prev)
		}
		off = prev
	}

	return off
}
