package main

import (
	"fmt"
	"os"

	"github.com/anomredux/boomi-du/internal/cli"
)

// version is set by goreleaser via ldflags.
var version = "dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
