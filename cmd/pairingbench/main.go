package main

import (
	"fmt"
	"os"

	"github.com/11090815/pairing/internal/pairingbench"
)

func main() {
	if err := pairingbench.NewCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}
