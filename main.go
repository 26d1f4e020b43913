package main

import (
	"os"

	"github.com/rogersnm/tick/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
