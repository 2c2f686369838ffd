package main

import (
	"os"

	"github.com/cexcal-dev/cexcal/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
