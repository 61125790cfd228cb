package alloc

import (
	"github.com/TeshanK/memory-allocator/internal/format"
)

// Realloc resizes the payload at ref to size bytes. A NilRef behaves as
// Malloc and a zero size behaves as Free (returning NilRef). The block is
// resized in place when it already accommodates the rounded size, possibly
// after absorbing an immediately following free block; a preceding block
// is never disturbed. Otherwise the payload moves: a new block is
// allocated, min(old, new) bytes are copied, and the old block is freed.
// If that allocation fails, the original block is left untouched and the
// error is returned.
func (a *Allocator) Realloc(ref Ref, size int64) (Ref, []byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats.ReallocCalls++

	if ref == NilRef {
		return a.malloc(size)
	}
	if size == 0 {
		a.free(ref)
		return NilRef, nil, nil
	}
	if size < 0 || size > maxRequest {
		return NilRef, nil, ErrInvalidSize
	}

	off := a.checkRef(ref)
	if off == format.InvalidOffset {
		return NilRef, nil, ErrInvalidSize
	}
	size = format.Align(size)

	data := a.h.Bytes()
	old := format.BlockSize(data, off)

	if old < size {
		// Absorb the physically following block, but only when it is free
		// and absorption is guaranteed to make the request fit in place.
		next := format.BlockEnd(data, off)
		if next < a.h.Break() && !format.BlockAllocated(data, next) &&
			old+format.HeaderSize+format.BlockSize(data, next) >= size {
			a.removeBlock(next)
			format.SetBlockSize(data, off,
				old+format.HeaderSize+format.BlockSize(data, next))
		}
	}

	if format.BlockSize(data, off) >= size {
		a.splitBlock(off, size)
		now := format.BlockSize(data, off)
		switch {
		case now > old:
			a.stats.BytesAllocated += now - old
		case now < old:
			a.stats.BytesFreed += old - now
		}
		return ref, a.payload(off), nil
	}

	newRef, payload, err := a.malloc(size)
	if err != nil {
		return NilRef, nil, err
	}
	copy(payload, data[ref:ref+old])
	a.free(ref)
	return newRef, payload, nil
}
