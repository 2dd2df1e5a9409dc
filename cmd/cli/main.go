// Package main is the entry point for the unitconv CLI.
package main

import (
	"os"

	"unit-converter/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
