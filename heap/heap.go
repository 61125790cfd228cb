package heap

import (
	"github.com/TeshanK/memory-allocator/internal/brk"
)

// Heap is the managed region, backed by an anonymous mapping (unix) or a
// byte slice (others) through the break primitive. It spans one contiguous
// run of blocks from the captured base to the current break.
type Heap struct {
	b    *brk.Brk
	base int64
}

// New reserves a fresh region of max bytes and captures the heap base at
// the current break position.
func New(max int64) (*Heap, error) {
	b, err := brk.New(max)
	if err != nil {
		return nil, err
	}
	return Attach(b), nil
}

// Attach wraps an existing break provider, capturing the base wherever its
// break currently sits. Bytes below the base are never touched.
func Attach(b *brk.Brk) *Heap {
	return &Heap{b: b, base: b.Break()}
}

// Bytes returns the full reserved region. Offsets handed out by the
// allocator index into this slice.
func (h *Heap) Bytes() []byte { return h.b.Bytes() }

// Base returns the offset of the first block header.
func (h *Heap) Base() int64 { return h.base }

// Break returns the current break position, one past the last block.
func (h *Heap) Break() int64 { return h.b.Break() }

// Max returns the reservation size, the hard ceiling on heap growth.
func (h *Heap) Max() int64 { return h.b.Max() }

// Used returns the number of bytes between base and break.
func (h *Heap) Used() int64 { return h.b.Break() - h.base }

// Extend moves the break by delta bytes and returns the previous break.
// Failures propagate from the break primitive with the break unmoved.
func (h *Heap) Extend(delta int64) (int64, error) {
	return h.b.Sbrk(delta)
}

// Close releases the underlying reservation.
func (h *Heap) Close() error { return h.b.Close() }
