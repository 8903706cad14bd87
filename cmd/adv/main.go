// Package main is the entry point for the adv CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/advert/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
