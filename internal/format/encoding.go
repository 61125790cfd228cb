package format

import "encoding/binary"

// Binary encoding utilities for little-endian integers. Header fields live
// inside the heap's byte range in little-endian order.

// PutU64 writes a uint64 value to the buffer at the specified offset in
// little-endian format.
func PutU64(b []byte, off int64, v uint64) {
	binary.LittleEndian.PutUint64(b[off:off+8], v)
}

// PutI64 writes an int64 value to the buffer at the specified offset in
// little-endian format.
func PutI64(b []byte, off int64, v int64) {
	binary.LittleEndian.PutUint64(b[off:off+8], uint64(v))
}

// ReadU64 reads a uint64 value from the buffer at the specified offset in
// little-endian format.
func ReadU64(b []byte, off int64) uint64 {
	return binary.LittleEndian.Uint64(b[off : off+8])
}

// ReadI64 reads an int64 value from the buffer at the specified offset in
// little-endian format.
func ReadI64(b []byte, off int64) int64 {
	return int64(binary.LittleEndian.Uint64(b[off : off+8]))
}
