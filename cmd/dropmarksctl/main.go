package main

import (
	"os"

	"dropmarks/internal/command"
)

func main() {
	if err := command.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
