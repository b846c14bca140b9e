package main

import (
	"os"

	"wheelsolve/cmd/wheelsolve/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
