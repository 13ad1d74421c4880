package main

import (
	"os"

	"github.com/mhealy/healthtrack/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
