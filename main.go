package main

import (
	"os"

	"github.com/scenedash/scenedash/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
