package main

import (
	"os"

	"github.com/arthanidhi/arthanidhi-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
