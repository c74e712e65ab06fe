// Command bcdsweep decomposes a 2D workspace into sweepable cells and
// plans full-coverage paths over them.
package main

import (
	"fmt"
	"os"

	"github.com/fliesfaries/bcdsweep/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
