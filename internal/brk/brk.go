// Package brk emulates the classic program-break interface over a single
// reserved memory region. It is the allocator's only source of heap bytes:
// "query the break" and "move the break by a signed delta" are the two
// operations, mirroring sbrk(2).
//
// The reservation is created once at New and never moves, so byte offsets
// below the break stay valid for the life of the Brk. On unix the region is
// an anonymous private mapping reserved without commit charge; elsewhere it
// is a plain byte slice.
package brk

import (
	"errors"
	"fmt"
)

// DefaultMax is the default reservation size when the caller does not pick
// one. 1 GiB of address space costs nothing until touched.
const DefaultMax = int64(1) << 30

var (
	// ErrOutOfMemory indicates the reservation is exhausted: the break
	// cannot move past the end of the reserved region.
	ErrOutOfMemory = errors.New("brk: reservation exhausted")

	// ErrBadDelta indicates a negative move that would place the break
	// below the start of the region.
	ErrBadDelta = errors.New("brk: break cannot move below region start")
)

// Brk is a growable region with an sbrk-style break position. It is not
// safe for concurrent use; the allocator serializes access behind its own
// lock.
type Brk struct {
	data  []byte
	brk   int64
	unmap func() error
}

// New reserves max bytes of address space and returns a Brk with the break
// at offset zero.
func New(max int64) (*Brk, error) {
	if max <= 0 {
		return nil, fmt.Errorf("brk: non-positive reservation size %d", max)
	}
	if max > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("brk: reservation too large to address (%d bytes)", max)
	}
	data, cleanup, err := reserve(int(max))
	if err != nil {
		return nil, err
	}
	return &Brk{data: data, unmap: cleanup}, nil
}

// Sbrk moves the break by delta bytes and returns the previous break
// position. Sbrk(0) queries the break without moving it. The move fails
// with ErrOutOfMemory past the end of the reservation and ErrBadDelta below
// its start; on failure the break does not move.
func (b *Brk) Sbrk(delta int64) (int64, error) {
	prev := b.brk
	next := prev + delta
	if delta > 0 && (next < prev || next > int64(len(b.data))) {
		return 0, ErrOutOfMemory
	}
	if next < 0 {
		return 0, ErrBadDelta
	}
	b.brk = next
	return prev, nil
}

// Break returns the current break position.
func (b *Brk) Break() int64 { return b.brk }

// Bytes returns the full reserved region. Only bytes below the break hold
// heap state.
func (b *Brk) Bytes() []byte { return b.data }

// Max returns the reservation size.
func (b *Brk) Max() int64 { return int64(len(b.data)) }

// Close releases the reservation. The Brk must not be used afterwards.
func (b *Brk) Close() error {
	if b.unmap == nil {
		return nil
	}
	err := b.unmap()
	b.unmap = nil
	b.data = nil
	b.brk = 0
	return err
}
