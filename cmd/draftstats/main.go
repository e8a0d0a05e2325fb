// Package main provides the entry point for the draftstats CLI.
package main

import (
	"github.com/colwyn/draftstats/internal/cli"
)

func main() {
	cli.Execute()
}
