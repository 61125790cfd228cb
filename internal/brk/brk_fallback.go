//go:build !unix

package brk

// reserve falls back to a plain byte slice when anonymous mappings are not
// available.
func reserve(size int) ([]byte, func() error, error) {
	return make([]byte, size), func() error { return nil }, nil
}
