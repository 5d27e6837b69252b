package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvpack/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lvpack: %v\n", err)
		os.Exit(1)
	}
}
