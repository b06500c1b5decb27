// Command bindery exports books into reader-friendly document formats.
package main

import (
	"os"

	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
