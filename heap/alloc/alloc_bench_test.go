package alloc

import (
	"testing"
)

// BenchmarkMallocFree measures the steady-state malloc/free round trip.
// Freeing immediately keeps the list at one block, so both the scan and
// the coalesce are O(1) here.
func BenchmarkMallocFree(b *testing.B) {
	a := New(WithMaxHeap(8 << 20))
	defer a.Close()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		ref, _, err := a.Malloc(128)
		if err != nil {
			b.Fatal(err)
		}
		a.Free(ref)
	}
}

// BenchmarkMallocVariedSizes measures allocation with varied sizes against
// a fragmented free list.
func BenchmarkMallocVariedSizes(b *testing.B) {
	sizes := []int64{32, 64, 128, 256, 512, 1024}

	a := New(WithMaxHeap(32 << 20))
	defer a.Close()

	// Fragment the heap before timing: allocate a run and free every
	// other block so the scan has holes to walk.
	var refs []Ref
	for i := 0; i < 256; i++ {
		ref, _, err := a.Malloc(sizes[i%len(sizes)])
		if err != nil {
			b.Fatal(err)
		}
		refs = append(refs, ref)
	}
	for i := 0; i < len(refs); i += 2 {
		a.Free(refs[i])
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		ref, _, err := a.Malloc(sizes[i%len(sizes)])
		if err != nil {
			b.Fatal(err)
		}
		a.Free(ref)
	}
}

// BenchmarkFree measures free with coalescing against pre-allocated blocks.
func BenchmarkFree(b *testing.B) {
	a := New(WithMaxHeap(1 << 30))
	defer a.Close()

	refs := make([]Ref, b.N)
	for i := 0; i < b.N; i++ {
		ref, _, err := a.Malloc(64)
		if err != nil {
			b.Fatal(err)
		}
		refs[i] = ref
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		a.Free(refs[i])
	}
}

// BenchmarkReallocGrow measures repeated in-place and relocating growth.
func BenchmarkReallocGrow(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		a := New(WithMaxHeap(1 << 20))
		ref, _, err := a.Malloc(32)
		if err != nil {
			b.Fatal(err)
		}
		for size := int64(64); size <= 8192; size *= 2 {
			ref, _, err = a.Realloc(ref, size)
			if err != nil {
				b.Fatal(err)
			}
		}
		a.Free(ref)
		a.Close()
	}
}
