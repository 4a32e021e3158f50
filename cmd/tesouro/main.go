package main

import (
	"os"

	"github.com/rpgo/treasury-calculator/cmd/tesouro/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
