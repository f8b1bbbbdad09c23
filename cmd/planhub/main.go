package main

import (
	"os"

	"github.com/planhub/planhub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
