// Package main provides the rflint command, a linter for Robot Framework files.
package main

import (
	"os"

	"github.com/leapstack-labs/rflint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
