package alloc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRandomOpsGuardInvariants performs a fixed-seed random mix of malloc,
// free, and realloc, validating every heap invariant after each step.
func TestRandomOpsGuardInvariants(t *testing.T) {
	a := newTestAllocator(t)

	rng := rand.New(rand.NewSource(42)) // fixed seed for reproducibility
	live := make(map[Ref]int64)

	pick := func() Ref {
		for ref := range live {
			return ref
		}
		return NilRef
	}

	for i := 0; i < 500; i++ {
		switch op := rng.Intn(4); {
		case op <= 1: // malloc, twice as likely
			size := int64(1 + rng.Intn(2048))
			ref, payload, err := a.Malloc(size)
			require.NoError(t, err, "step %d: Malloc(%d)", i, size)
			live[ref] = int64(len(payload))
		case op == 2: // free
			if ref := pick(); ref != NilRef {
				a.Free(ref)
				delete(live, ref)
			}
		default: // realloc
			if ref := pick(); ref != NilRef {
				size := int64(1 + rng.Intn(2048))
				newRef, payload, err := a.Realloc(ref, size)
				require.NoError(t, err, "step %d: Realloc(%#x, %d)", i, ref, size)
				delete(live, ref)
				live[newRef] = int64(len(payload))
			}
		}

		require.NoError(t, a.Check(), "step %d: invariants violated", i)
	}

	// Drain and verify the heap collapses back into a single free block.
	for ref := range live {
		a.Free(ref)
		require.NoError(t, a.Check())
	}
	blocks, _ := a.FreeList()
	require.Equal(t, 1, blocks, "a fully freed heap must coalesce into one block")
}

// TestStatsAccounting verifies the counters add up over a simple workload.
func TestStatsAccounting(t *testing.T) {
	a := newTestAllocator(t)

	refA, _ := mustMalloc(t, a, 100) // rounds to 128
	refB, _ := mustMalloc(t, a, 64)
	a.Free(refA)
	a.Free(refB)

	stats := a.Stats()
	require.Equal(t, int64(2), stats.MallocCalls)
	require.Equal(t, int64(2), stats.FreeCalls)
	require.Equal(t, int64(128+64), stats.BytesAllocated)
	require.Equal(t, int64(128+64), stats.BytesFreed)
	require.Equal(t, int64(0), stats.InUse())
	require.Equal(t, int64(2), stats.GrowCalls)
	require.Equal(t, int64(128+64+2*32), stats.GrowBytes)
}
