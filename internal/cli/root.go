package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion overrides the build metadata reported by `--version`; wired
// up from cmd/bcdsweep/main.go via -ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute builds and runs the bcdsweep command tree.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "bcdsweep",
		Short:        "bcdsweep decomposes a workspace into sweepable cells and plans full-coverage paths",
		Long:         `bcdsweep performs boustrophedon cellular decomposition over a 2D workspace with convex obstacles, producing a cell adjacency graph, a visitation order, and a serpentine coverage path per cell.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("bcdsweep %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPlanCmd())
	root.AddCommand(newLinkCmd())
	root.AddCommand(newGraphCmd())

	return root.ExecuteContext(context.Background())
}
