package format

// Alignment utilities. Request sizes and all header positions are kept on
// Alignment-byte boundaries.

// Align returns n aligned up to the next Alignment-byte boundary.
//
// Example:
//
//	Align(1)  = 32
//	Align(32) = 32
//	Align(33) = 64
func Align(n int64) int64 {
	return (n + AlignmentMask) & ^int64(AlignmentMask)
}

// IsAligned reports whether n is a multiple of Alignment.
func IsAligned(n int64) bool {
	return n&AlignmentMask == 0
}
