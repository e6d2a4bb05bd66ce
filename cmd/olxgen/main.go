// Package main provides the olxgen CLI.
package main

import (
	"os"

	"github.com/goliatone/go-olxgui/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
