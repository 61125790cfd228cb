package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TeshanK/memory-allocator/internal/format"
)

// testHeapMax keeps test reservations small; a megabyte outlasts every
// scenario here.
const testHeapMax = int64(1) << 20

// newTestAllocator returns an allocator with a small private heap, released
// when the test ends.
func newTestAllocator(t testing.TB) *Allocator {
	t.Helper()
	a := New(WithMaxHeap(testHeapMax))
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// mustMalloc allocates or fails the test.
func mustMalloc(t testing.TB, a *Allocator, size int64) (Ref, []byte) {
	t.Helper()
	ref, payload, err := a.Malloc(size)
	require.NoError(t, err, "Malloc(%d) should succeed", size)
	require.NotEqual(t, NilRef, ref, "Malloc(%d) should return a non-nil ref", size)
	return ref, payload
}

// assertInvariants fails the test if any heap or free-list invariant is
// violated.
func assertInvariants(t testing.TB, a *Allocator) {
	t.Helper()
	require.NoError(t, a.Check(), "heap invariants must hold")
}

// headerOf recovers the header offset behind a payload reference.
func headerOf(ref Ref) int64 { return format.HeaderOffset(ref) }

// blockSizeOf reads the recorded payload size of the block behind ref.
func blockSizeOf(a *Allocator, ref Ref) int64 {
	return format.BlockSize(a.h.Bytes(), headerOf(ref))
}

// blockFree reports whether the block behind ref is marked free.
func blockFree(a *Allocator, ref Ref) bool {
	return !format.BlockAllocated(a.h.Bytes(), headerOf(ref))
}
