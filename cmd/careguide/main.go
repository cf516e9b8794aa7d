package main

import (
	"fmt"
	"os"

	"github.com/sakamichi-tools/penlight/internal/carecli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := carecli.Run(version); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
