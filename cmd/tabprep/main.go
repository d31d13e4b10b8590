// Command tabprep cleans CSV tables.
package main

import (
	"fmt"
	"os"

	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/internal/cli"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/internal/logger"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
