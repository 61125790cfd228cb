package format

// Block header accessors. Every function takes the heap byte range and the
// block's header offset; none of them validates bounds. The single
// conversion boundary between header offsets and payload offsets lives here
// (PayloadOffset/HeaderOffset) so the fixed-negative-offset contract is not
// re-derived at call sites.

// BlockSize returns the block's usable payload size in bytes.
func BlockSize(data []byte, off int64) int64 {
	return ReadI64(data, off+BlockSizeOffset)
}

// SetBlockSize records the block's usable payload size.
func SetBlockSize(data []byte, off, size int64) {
	PutI64(data, off+BlockSizeOffset, size)
}

// BlockAllocated reports whether the block is marked in use.
func BlockAllocated(data []byte, off int64) bool {
	return ReadU64(data, off+BlockFlagsOffset)&FlagAllocated != 0
}

// SetBlockAllocated sets or clears the in-use flag.
func SetBlockAllocated(data []byte, off int64, allocated bool) {
	var v uint64
	if allocated {
		v = FlagAllocated
	}
	PutU64(data, off+BlockFlagsOffset, v)
}

// BlockPrev returns the header offset of the previous free-list entry, or
// InvalidOffset.
func BlockPrev(data []byte, off int64) int64 {
	return ReadI64(data, off+BlockPrevOffset)
}

// SetBlockPrev records the previous free-list link.
func SetBlockPrev(data []byte, off, prev int64) {
	PutI64(data, off+BlockPrevOffset, prev)
}

// BlockNext returns the header offset of the next free-list entry, or
// InvalidOffset.
func BlockNext(data []byte, off int64) int64 {
	return ReadI64(data, off+BlockNextOffset)
}

// SetBlockNext records the next free-list link.
func SetBlockNext(data []byte, off, next int64) {
	PutI64(data, off+BlockNextOffset, next)
}

// BlockEnd returns the offset one past the block's payload, which is also
// the header offset of the physically following block.
func BlockEnd(data []byte, off int64) int64 {
	return off + HeaderSize + BlockSize(data, off)
}

// PayloadOffset converts a header offset to the payload offset handed to
// callers.
func PayloadOffset(off int64) int64 {
	return off + HeaderSize
}

// HeaderOffset recovers the header offset from a payload offset.
func HeaderOffset(payload int64) int64 {
	return payload - HeaderSize
}
