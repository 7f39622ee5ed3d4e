package main

import (
	"os"

	"github.com/foodline-labs/foodline/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
