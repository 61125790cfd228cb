package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	maxHeap int64
)

var rootCmd = &cobra.Command{
	Use:   "heapctl",
	Short: "Exercise and inspect the heap allocator",
	Long: `heapctl drives the first-fit heap allocator from the command line.
It can run scripted and randomized allocation workloads, dump the free
list, and report allocator statistics, which makes it useful for kicking
the tires on fragmentation and growth behavior.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		Int64Var(&maxHeap, "max-heap", 64<<20, "Heap reservation ceiling in bytes")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printVerbose prints a message only when verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
