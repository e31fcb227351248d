// SPDX-License-Identifier: EPL-2.0

// Command audthin decodes an audio file and prints one "index;value" line
// per sample kept after thinning it down to a target rate.
//
// Usage:
//
//	audthin [flags] <input>
//
// Data goes to stdout. Logs go to stderr.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
