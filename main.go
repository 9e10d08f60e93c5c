package main

import (
	"os"

	"github.com/buildtall-systems/scoopshop/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
