package main

import (
	"os"

	"natcmp/cmd/natsort/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
