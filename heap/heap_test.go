package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TeshanK/memory-allocator/internal/brk"
)

// TestNewCapturesBaseAtZero verifies a fresh heap starts with base and
// break together at the region start.
func TestNewCapturesBaseAtZero(t *testing.T) {
	h, err := New(1 << 16)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	assert.Equal(t, int64(0), h.Base())
	assert.Equal(t, int64(0), h.Break())
	assert.Equal(t, int64(0), h.Used())
	assert.Equal(t, int64(1<<16), h.Max())
}

// TestAttachCapturesCurrentBreak verifies Attach pins the base wherever the
// break provider already sits, leaving lower bytes untouched.
func TestAttachCapturesCurrentBreak(t *testing.T) {
	b, err := brk.New(1 << 16)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	_, err = b.Sbrk(256)
	require.NoError(t, err)

	h := Attach(b)
	assert.Equal(t, int64(256), h.Base())
	assert.Equal(t, int64(0), h.Used())
}

// TestExtendGrowsUsed verifies Extend moves the break and Used tracks the
// distance from base.
func TestExtendGrowsUsed(t *testing.T) {
	h, err := New(1 << 16)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	prev, err := h.Extend(512)
	require.NoError(t, err)
	assert.Equal(t, int64(0), prev)
	assert.Equal(t, int64(512), h.Break())
	assert.Equal(t, int64(512), h.Used())

	prev, err = h.Extend(128)
	require.NoError(t, err)
	assert.Equal(t, int64(512), prev)
	assert.Equal(t, int64(640), h.Used())
}

// TestExtendFailurePreservesBreak verifies growth past the reservation
// fails cleanly with the break unmoved.
func TestExtendFailurePreservesBreak(t *testing.T) {
	h, err := New(1024)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	_, err = h.Extend(1024)
	require.NoError(t, err)

	_, err = h.Extend(1)
	require.ErrorIs(t, err, brk.ErrOutOfMemory)
	assert.Equal(t, int64(1024), h.Break())
}

// TestBytesSpanReservation verifies Bytes exposes the whole region so
// offsets below the break index into it directly.
func TestBytesSpanReservation(t *testing.T) {
	h, err := New(2048)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	_, err = h.Extend(64)
	require.NoError(t, err)

	data := h.Bytes()
	require.Len(t, data, 2048)
	data[0] = 0xAB
	assert.Equal(t, byte(0xAB), h.Bytes()[0])
}
