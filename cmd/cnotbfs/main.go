// Command cnotbfs enumerates and searches the CNOT-circuit BFS space over
// packed NxN boolean matrices.
package main

import (
	"os"

	"github.com/boolmat/cnotbfs/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
