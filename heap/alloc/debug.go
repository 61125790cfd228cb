package alloc

import (
	"fmt"
	"os"
)

// Runtime debug flag for allocation logging - controlled by HEAP_LOG_ALLOC
// env var.
var logAlloc = os.Getenv("HEAP_LOG_ALLOC") != ""

// debugLogf prints debug messages when allocation logging is enabled.
func debugLogf(msg string, args ...any) {
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[ALLOC] "+msg+"\n", args...)
	}
}

// fatalf reports an unrecoverable protocol violation and terminates the
// process. Continuing after a double free would let a corrupted free list
// serve future allocations, so the policy is a hard stop, not an error
// return. Tests swap the hook out to observe the path in-process.
var fatalf = func(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "alloc: "+msg+"\n", args...)
	os.Exit(1)
}
