// Package format defines the on-heap block header layout and the low-level
// accessors for reading and writing header fields. The goal is to keep the
// byte-level layout in one place, independent from allocation policy, so the
// allocator package can manipulate headers without scattered offset
// arithmetic.
package format

const (
	// Alignment is the allocation alignment unit in bytes. Every payload
	// size is rounded up to a multiple of Alignment, and every payload
	// offset is Alignment-aligned.
	Alignment = 32

	// AlignmentMask is the bitmask used for rounding sizes up to Alignment
	// boundaries (Alignment - 1).
	AlignmentMask = Alignment - 1

	// HeaderSize is the number of bytes used by the block header preceding
	// every block payload, free or allocated. It is itself a multiple of
	// Alignment so that a payload offset (header offset + HeaderSize) stays
	// aligned.
	HeaderSize = 32

	// WordSize is the size of one machine word in bytes. The smallest
	// payload worth tracking as a separate free block must hold at least
	// one word.
	WordSize = 8

	// MinSplitRemainder is the smallest leftover (header plus payload) that
	// justifies splitting a free block. Anything smaller would produce a
	// sliver that can never satisfy a request, so it is handed to the
	// caller as internal fragmentation instead.
	MinSplitRemainder = HeaderSize + WordSize

	// InvalidOffset is the free-list link sentinel. Offset 0 is a valid
	// header position (the first block sits at the heap base), so links use
	// -1 for "none".
	InvalidOffset int64 = -1
)

// Block header field offsets. The header is 32 bytes, little-endian:
//
//	0x00  size   int64   usable payload bytes, excludes the header
//	0x08  flags  uint64  bit 0 set while the block is allocated
//	0x10  prev   int64   previous free block header offset, or InvalidOffset
//	0x18  next   int64   next free block header offset, or InvalidOffset
//
// The prev/next links carry meaning only while the block is on the free
// list; removal resets them to InvalidOffset.
const (
	BlockSizeOffset  = 0x00
	BlockFlagsOffset = 0x08
	BlockPrevOffset  = 0x10
	BlockNextOffset  = 0x18
)

// FlagAllocated is the flags bit distinguishing in-use blocks from free
// ones.
const FlagAllocated uint64 = 1
