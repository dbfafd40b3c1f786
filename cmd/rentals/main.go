// Command rentals is a CLI over the marketplace's group, invitation and
// conversation workflows.
package main

import (
	"fmt"
	"os"

	"github.com/simplerentals/rentals-go/util/logging"
)

func main() {
	logging.Setup()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
