package main

import (
	"os"

	"github.com/avishek/quizy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
