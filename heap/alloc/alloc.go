package alloc

import (
	"math"
	"sync"

	"github.com/TeshanK/memory-allocator/heap"
	"github.com/TeshanK/memory-allocator/internal/brk"
	"github.com/TeshanK/memory-allocator/internal/format"
)

// maxRequest bounds payload sizes so that rounding up and adding a header
// can never overflow an int64 offset.
const maxRequest = math.MaxInt64 - format.HeaderSize - format.AlignmentMask

// Allocator is a first-fit heap allocator over one contiguous region. All
// state (the heap, the free-list head, and the statistics) is guarded by a
// single mutex held for the full duration of every public operation, so
// concurrent calls serialize into some total order.
type Allocator struct {
	mu sync.Mutex

	h        *heap.Heap
	ownsHeap bool
	maxHeap  int64

	// head is the first free block's header offset, InvalidOffset when the
	// free list is empty.
	head int64

	stats Stats
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithHeap attaches an existing heap instead of reserving one lazily.
// Close will not release a heap supplied this way.
func WithHeap(h *heap.Heap) Option {
	return func(a *Allocator) { a.h = h }
}

// WithMaxHeap sets the reservation size used when the allocator creates
// its own heap on first use.
func WithMaxHeap(max int64) Option {
	return func(a *Allocator) { a.maxHeap = max }
}

// New creates an allocator. The heap itself is reserved lazily on the
// first operation unless WithHeap supplied one.
func New(opts ...Option) *Allocator {
	a := &Allocator{
		head:    format.InvalidOffset,
		maxHeap: brk.DefaultMax,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// initHeap reserves the heap on first use.
func (a *Allocator) initHeap() error {
	if a.h != nil {
		return nil
	}
	h, err := heap.New(a.maxHeap)
	if err != nil {
		return err
	}
	a.h = h
	a.ownsHeap = true
	return nil
}

// Malloc allocates size usable bytes, rounded up to the alignment unit,
// and returns the payload reference plus a view of the payload bytes. The
// returned payload is always Alignment-aligned and never overlaps any
// other live allocation or free block. A size of zero or less, or one too
// large to address, fails with ErrInvalidSize; an exhausted heap fails
// with ErrOutOfMemory.
func (a *Allocator) Malloc(size int64) (Ref, []byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.malloc(size)
}

// malloc implements Malloc with the lock held.
func (a *Allocator) malloc(size int64) (Ref, []byte, error) {
	a.stats.MallocCalls++
	if size <= 0 || size > maxRequest {
		return NilRef, nil, ErrInvalidSize
	}
	if err := a.initHeap(); err != nil {
		return NilRef, nil, err
	}
	size = format.Align(size)

	data := a.h.Bytes()
	last := format.InvalidOffset

	// First fit, in address order. A block within one split remainder of
	// the request is an exact-or-near fit and is taken whole; anything
	// larger is split.
	for curr := a.head; curr != format.InvalidOffset; curr = format.BlockNext(data, curr) {
		last = curr
		bs := format.BlockSize(data, curr)
		switch {
		case bs >= size && bs < size+format.MinSplitRemainder:
			a.removeBlock(curr)
			return a.grant(curr), a.payload(curr), nil
		case bs >= size:
			a.removeBlock(curr)
			target := a.splitBlock(curr, size)
			return a.grant(target), a.payload(target), nil
		}
	}

	off, err := a.growHeap(size, last)
	if err != nil {
		return NilRef, nil, err
	}
	return a.grant(off), a.payload(off), nil
}

// grant records the allocation in the statistics and converts the block's
// header offset to the payload reference handed to the caller.
func (a *Allocator) grant(off int64) Ref {
	a.stats.BytesAllocated += format.BlockSize(a.h.Bytes(), off)
	return format.PayloadOffset(off)
}

// payload returns a capacity-clamped view of the block's usable bytes.
func (a *Allocator) payload(off int64) []byte {
	data := a.h.Bytes()
	p := format.PayloadOffset(off)
	n := format.BlockSize(data, off)
	return data[p : p+n : p+n]
}

// Free returns the payload at ref to the free list, eagerly coalescing it
// with any adjacent free blocks. Freeing NilRef is a no-op. Freeing a
// block that is already free is a double free: the free list can no
// longer be trusted, so the process terminates after a diagnostic rather
// than limping on with silent corruption.
func (a *Allocator) Free(ref Ref) {
	if ref == NilRef {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.free(ref)
}

// free implements Free with the lock held.
func (a *Allocator) free(ref Ref) {
	a.stats.FreeCalls++
	off := a.checkRef(ref)
	if off == format.InvalidOffset {
		return
	}
	a.stats.BytesFreed += format.BlockSize(a.h.Bytes(), off)
	a.insertBlock(off)
}

// checkRef recovers and validates the header offset behind a payload
// reference. Protocol violations are fatal; the InvalidOffset return only
// happens when a test overrides the fatal hook.
func (a *Allocator) checkRef(ref Ref) int64 {
	if a.h == nil {
		fatalf("free of %#x with no heap", ref)
		return format.InvalidOffset
	}
	off := format.HeaderOffset(ref)
	if off < a.h.Base() || format.PayloadOffset(off) > a.h.Break() {
		fatalf("invalid pointer %#x", ref)
		return format.InvalidOffset
	}
	if !format.BlockAllocated(a.h.Bytes(), off) {
		fatalf("double free not allowed (payload %#x)", ref)
		return format.InvalidOffset
	}
	return off
}

// Close releases the heap if the allocator reserved it. The allocator
// must not be used afterwards.
func (a *Allocator) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.h == nil || !a.ownsHeap {
		return nil
	}
	err := a.h.Close()
	a.h = nil
	a.head = format.InvalidOffset
	return err
}

// Process-wide default allocator, created lazily on first use and never
// torn down, mirroring a conventional heap's lifecycle.
var (
	defaultOnce  sync.Once
	defaultAlloc *Allocator
)

// Default returns the process-wide allocator.
func Default() *Allocator {
	defaultOnce.Do(func() { defaultAlloc = New() })
	return defaultAlloc
}

// Malloc allocates from the process-wide allocator.
func Malloc(size int64) (Ref, []byte, error) { return Default().Malloc(size) }

// Free releases a payload of the process-wide allocator.
func Free(ref Ref) { Default().Free(ref) }

// Realloc resizes a payload of the process-wide allocator.
func Realloc(ref Ref, size int64) (Ref, []byte, error) { return Default().Realloc(ref, size) }
