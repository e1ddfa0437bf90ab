// Package main provides the entry point for the agentcore server CLI.
package main

import (
	"fmt"
	"os"

	"github.com/relaycore/agentcore/cmd/agentsrv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
