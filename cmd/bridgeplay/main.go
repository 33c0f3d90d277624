// ABOUTME: CLI entrypoint for bridgeplay with serve, list, check, and version commands.
// ABOUTME: Wires config, the sample catalog, and the web server, and handles shutdown signals.
package main

import (
	"context"
	"fmt"
	"os"
)

var version = "dev"

func main() {
	root := newRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
