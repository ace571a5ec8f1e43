// Promptpress - deterministic prompt compression and completion
package main

import (
	"os"

	"github.com/HartBrook/promptpress/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
