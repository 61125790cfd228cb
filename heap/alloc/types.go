package alloc

// Ref is a payload reference: the payload's byte offset inside the heap
// region. It is what Malloc hands out and what Free and Realloc take back.
type Ref = int64

// NilRef is the null payload reference. The first payload in any heap sits
// one header past the base, so offset 0 never denotes a live payload.
const NilRef Ref = 0
