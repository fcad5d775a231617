package main

import (
	"os"

	"hashicon/cmd/hashicon/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
