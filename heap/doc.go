// Package heap owns the contiguous byte region that the allocator carves
// into blocks. It wraps the break primitive in internal/brk with the two
// pieces of bookkeeping the allocator needs: the lazily captured base (the
// break position when the heap was attached) and a stable byte view of the
// reserved region.
//
// The package deliberately knows nothing about block headers or free lists;
// allocation policy lives in heap/alloc.
package heap
