// Command indicnorm normalizes and sentence-splits Indian language text.
//
// It reads UTF-8 text line by line from stdin or a file, applies the
// normalizer for the requested language, and writes the result preserving
// line boundaries.
package main

import (
	"fmt"
	"os"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	app := newCLIApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
