package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TeshanK/memory-allocator/heap/alloc"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through a scripted allocation sequence",
		Long: `The demo command runs a small scripted sequence of allocations,
frees, and reallocs, dumping the free list after each step. It is meant
to make splitting, coalescing, and in-place growth visible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	a := alloc.New(alloc.WithMaxHeap(maxHeap))
	defer a.Close()

	step := func(title string) {
		fmt.Printf("\n== %s ==\n", title)
		a.DumpFreeList(os.Stdout)
	}

	refA, _, err := a.Malloc(64)
	if err != nil {
		return err
	}
	refB, _, err := a.Malloc(128)
	if err != nil {
		return err
	}
	refC, _, err := a.Malloc(64)
	if err != nil {
		return err
	}
	step("after malloc 64, 128, 64")

	a.Free(refB)
	step("after freeing the middle block")

	// Splits the freed 128-byte hole, leaving a remainder on the list.
	refD, _, err := a.Malloc(32)
	if err != nil {
		return err
	}
	step("after malloc 32 reuses the hole")

	a.Free(refA)
	a.Free(refD)
	step("after freeing neighbors (coalesced)")

	refC, _, err = a.Realloc(refC, 512)
	if err != nil {
		return err
	}
	step("after growing the last block to 512")

	a.Free(refC)
	step("after freeing everything")

	if err := a.Check(); err != nil {
		return err
	}

	stats := a.Stats()
	fmt.Printf("\nsplits=%d coalesces=%d/%d grows=%d (%d in place)\n",
		stats.SplitCount, stats.CoalesceForward, stats.CoalesceBackward,
		stats.GrowCalls, stats.ExtendInPlace)
	return nil
}
