package main

import (
	"os"

	"github.com/ourlang/ourlang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
