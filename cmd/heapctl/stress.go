package main

import (
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/TeshanK/memory-allocator/heap/alloc"
)

var (
	stressOps     int
	stressWorkers int
	stressMinSize int64
	stressMaxSize int64
	stressSeed    int64
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVar(&stressOps, "ops", 10000, "Operations per worker")
	cmd.Flags().IntVar(&stressWorkers, "workers", 4, "Concurrent workers")
	cmd.Flags().Int64Var(&stressMinSize, "min-size", 16, "Minimum request size in bytes")
	cmd.Flags().Int64Var(&stressMaxSize, "max-size", 4096, "Maximum request size in bytes")
	cmd.Flags().Int64Var(&stressSeed, "seed", 0, "Random seed (0 picks one from the clock)")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stress",
		Short: "Run a randomized allocation workload",
		Long: `The stress command runs a randomized malloc/free/realloc workload
against a single allocator, validates the heap afterwards, and prints
allocator statistics.

Example:
  heapctl stress --ops 100000 --workers 8
  heapctl stress --seed 42 --max-size 16384 -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress()
		},
	}
}

func runStress() error {
	if stressMinSize <= 0 || stressMaxSize < stressMinSize {
		return fmt.Errorf("bad size range [%d, %d]", stressMinSize, stressMaxSize)
	}

	seed := stressSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	printVerbose("seed: %d\n", seed)

	a := alloc.New(alloc.WithMaxHeap(maxHeap))
	defer a.Close()

	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < stressWorkers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(w)))
			var refs []alloc.Ref
			for i := 0; i < stressOps; i++ {
				switch {
				case len(refs) == 0 || rng.Intn(100) < 50:
					size := stressMinSize + rng.Int63n(stressMaxSize-stressMinSize+1)
					ref, payload, err := a.Malloc(size)
					if err != nil {
						continue
					}
					payload[0] = byte(w)
					refs = append(refs, ref)
				case rng.Intn(100) < 60:
					idx := rng.Intn(len(refs))
					a.Free(refs[idx])
					refs = append(refs[:idx], refs[idx+1:]...)
				default:
					idx := rng.Intn(len(refs))
					size := stressMinSize + rng.Int63n(stressMaxSize-stressMinSize+1)
					ref, _, err := a.Realloc(refs[idx], size)
					if err != nil {
						continue
					}
					refs[idx] = ref
				}
			}
			for _, ref := range refs {
				a.Free(ref)
			}
		}(w)
	}
	wg.Wait()

	elapsed := time.Since(start)

	if err := a.Check(); err != nil {
		return fmt.Errorf("heap validation failed after workload: %w", err)
	}

	stats := a.Stats()
	blocks, freeBytes := a.FreeList()

	fmt.Printf("Workload: %d workers x %d ops in %v\n", stressWorkers, stressOps, elapsed)
	fmt.Printf("Malloc calls:      %d\n", stats.MallocCalls)
	fmt.Printf("Free calls:        %d\n", stats.FreeCalls)
	fmt.Printf("Realloc calls:     %d\n", stats.ReallocCalls)
	fmt.Printf("Heap grows:        %d (%d in place, %d bytes)\n",
		stats.GrowCalls, stats.ExtendInPlace, stats.GrowBytes)
	fmt.Printf("Splits:            %d\n", stats.SplitCount)
	fmt.Printf("Coalesces:         %d forward, %d backward\n",
		stats.CoalesceForward, stats.CoalesceBackward)
	fmt.Printf("Bytes allocated:   %d\n", stats.BytesAllocated)
	fmt.Printf("Bytes freed:       %d\n", stats.BytesFreed)
	fmt.Printf("Final free list:   %d block(s), %d bytes\n", blocks, freeBytes)

	if verbose {
		fmt.Println("\nFree list:")
		a.DumpFreeList(os.Stdout)
	}
	return nil
}
