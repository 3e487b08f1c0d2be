// Package main provides the CLI for the numina math toolkit.
package main

import (
	"os"

	"github.com/numina-labs/numina/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
