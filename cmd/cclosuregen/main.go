// Command cclosuregen generates the C descriptor types and Go glue for the
// closure signatures declared in a closures.yaml manifest.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
