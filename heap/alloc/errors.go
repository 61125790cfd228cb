package alloc

import (
	"errors"

	"github.com/TeshanK/memory-allocator/internal/brk"
)

var (
	// ErrInvalidSize indicates a request for zero, negative, or
	// unaddressably large payload size. The heap is untouched.
	ErrInvalidSize = errors.New("alloc: invalid allocation size")

	// ErrOutOfMemory indicates the break primitive could not extend the
	// heap. The heap stays consistent and smaller requests may still
	// succeed.
	ErrOutOfMemory = brk.ErrOutOfMemory
)
