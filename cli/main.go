package main

import (
	"os"

	"github.com/uevc/odata.v4.parser/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
