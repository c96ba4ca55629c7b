package main

import (
	"os"

	"github.com/vaultport/vaultport/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
