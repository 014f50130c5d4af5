// Command contactnet generates a Poisson random contact network and prints
// a summary of its degree distribution, components and node values.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
