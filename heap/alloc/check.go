package alloc

import (
	"fmt"
	"io"

	"github.com/TeshanK/memory-allocator/internal/format"
)

// Check validates every structural invariant of the heap and the free
// list. It is meant for tests and diagnostics; the allocator never calls
// it on the hot path.
//
// Verified invariants:
//   - blocks tile the range from base to break exactly, with aligned,
//     positive sizes
//   - the free list is strictly address sorted and acyclic, with
//     consistent back links
//   - no two free blocks are physically adjacent
//   - a block's allocated flag is set exactly when it is absent from the
//     free list
func (a *Allocator) Check() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.check()
}

// check implements Check with the lock held.
func (a *Allocator) check() error {
	if a.h == nil {
		return nil
	}
	data := a.h.Bytes()

	// Physical walk from base to break.
	free := make(map[int64]bool)
	for off := a.h.Base(); off != a.h.Break(); off = format.BlockEnd(data, off) {
		if off+format.HeaderSize > a.h.Break() {
			return fmt.Errorf("alloc: block header at %#x overruns the break %#x", off, a.h.Break())
		}
		size := format.BlockSize(data, off)
		if size <= 0 || !format.IsAligned(size) {
			return fmt.Errorf("alloc: block at %#x has invalid size %d", off, size)
		}
		if format.BlockEnd(data, off) > a.h.Break() {
			return fmt.Errorf("alloc: block at %#x (size %d) overruns the break %#x",
				off, size, a.h.Break())
		}
		if !format.BlockAllocated(data, off) {
			free[off] = true
		}
	}

	// List walk: ordering, links, adjacency, membership.
	seen := 0
	prev := format.InvalidOffset
	for curr := a.head; curr != format.InvalidOffset; curr = format.BlockNext(data, curr) {
		if !free[curr] {
			return fmt.Errorf("alloc: free-list entry %#x is not a free block", curr)
		}
		if format.BlockPrev(data, curr) != prev {
			return fmt.Errorf("alloc: free block %#x has back link %#x, want %#x",
				curr, format.BlockPrev(data, curr), prev)
		}
		if prev != format.InvalidOffset {
			if curr <= prev {
				return fmt.Errorf("alloc: free list not address sorted at %#x after %#x", curr, prev)
			}
			if format.BlockEnd(data, prev) == curr {
				return fmt.Errorf("alloc: adjacent free blocks %#x and %#x survived coalescing",
					prev, curr)
			}
		}
		seen++
		if seen > len(free) {
			return fmt.Errorf("alloc: free list cycle detected after %d entries", seen)
		}
		prev = curr
	}
	if seen != len(free) {
		return fmt.Errorf("alloc: %d free blocks in the heap but %d on the list", len(free), seen)
	}
	return nil
}

// DumpFreeList writes the free list in address order, one entry per line,
// for debugging.
func (a *Allocator) DumpFreeList(w io.Writer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.h == nil {
		fmt.Fprintln(w, "<no heap>")
		return
	}
	data := a.h.Bytes()
	for curr := a.head; curr != format.InvalidOffset; curr = format.BlockNext(data, curr) {
		fmt.Fprintf(w, "%#x: size=%d\n", curr, format.BlockSize(data, curr))
	}
}
