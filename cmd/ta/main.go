package main

import (
	"os"

	"github.com/rustyeddy/ta/cmd/ta/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
