// Command userctl manages user records from the command line, either
// directly against the configured database or through a running server.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(connect).Execute(); err != nil {
		os.Exit(1)
	}
}
