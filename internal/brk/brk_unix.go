//go:build unix

package brk

import (
	"errors"

	"golang.org/x/sys/unix"
)

// reserve maps size bytes of anonymous private memory. MAP_NORESERVE keeps
// the kernel from charging the whole reservation up front, so large regions
// only consume physical pages as the allocator touches them.
func reserve(size int) ([]byte, func() error, error) {
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON|unix.MAP_NORESERVE)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, cleanup, nil
}
