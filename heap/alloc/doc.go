// Package alloc implements a general-purpose dynamic memory allocator over
// a single contiguous heap region, built directly on the break primitive in
// internal/brk.
//
// # Overview
//
// Every block of heap memory, free or allocated, carries a fixed 32-byte
// header (see internal/format) immediately followed by its payload. Free
// blocks are chained through their headers into one doubly linked list kept
// strictly sorted by address. Allocation is first fit; deallocation
// reinserts the block and eagerly coalesces it with physically adjacent
// free neighbors, so adjacent free blocks never persist.
//
// # Operations
//
//   - Malloc(size): first-fit scan, splitting oversized blocks and growing
//     the heap when the scan exhausts
//   - Free(ref): reinsertion with eager coalescing; NilRef is a no-op
//   - Realloc(ref, size): in-place resize when possible (absorbing a
//     following free block), relocate-and-copy otherwise
//
// # Splitting
//
// A free block larger than a request is split into the request and a
// remainder that returns to the free list, unless the remainder could not
// later hold a header plus one machine word, in which case the whole block
// is handed out oversized. The threshold trades a little internal
// fragmentation for a free list without unusable slivers.
//
// # Heap growth
//
// When no free block fits, the allocator extends the heap. If the free
// list's tail block ends exactly at the break, the break moves by just the
// shortfall and that block becomes the allocation; otherwise a fresh region
// of request-plus-header bytes is taken from the break.
//
// # Errors
//
// Invalid requests (zero, negative, or unaddressably large sizes) and
// growth failures come back as ErrInvalidSize and ErrOutOfMemory; the heap
// stays consistent either way. A double free is different: it is a caller
// protocol violation after which the free list cannot be trusted, so the
// process writes a diagnostic to stderr and exits.
//
// # Thread safety
//
// One mutex serializes every public operation for its full duration, so
// concurrent calls behave as if executed in some total order. There are no
// per-goroutine caches and no timeouts; a caller blocked on the lock waits
// until the holder releases it.
package alloc
