package main

import (
	"os"

	"github.com/chainspect/chainspect/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
