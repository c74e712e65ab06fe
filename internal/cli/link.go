package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fliesfaries/bcdsweep/pkg/bcdio"
	"github.com/fliesfaries/bcdsweep/pkg/linker"
)

type linkOpts struct {
	input  string
	output string
}

func newLinkCmd() *cobra.Command {
	var opts linkOpts

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Find an 8-connected path between two points over an occupancy grid",
		Long:  `link reads a grid, its blocked cells, and a start/end point, and writes the shortest 8-connected path between them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLink(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input JSON file (stdin if empty)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output JSON file (stdout if empty)")

	return cmd
}

func runLink(cmd *cobra.Command, opts *linkOpts) error {
	logger := loggerFromContext(cmd.Context())

	in, err := openInput(opts.input)
	if err != nil {
		return err
	}
	defer in.Close()

	req, err := bcdio.ReadLinkInput(in)
	if err != nil {
		return fmt.Errorf("reading link request: %w", err)
	}

	grid := linker.NewOccupancyGrid(req.Width, req.Height)
	for _, p := range req.Blocked {
		grid.Block(p)
	}

	cm := linker.NewCostMap(grid)
	cm.Build(req.Start)

	path, err := cm.FindLinkingPath(req.End)
	if err != nil {
		if errors.Is(err, linker.ErrUnreachable) {
			logger.Warnf("no path from %v to %v", req.Start, req.End)
		}
		return err
	}
	logger.Infof("found a %d-point path from %v to %v", len(path), req.Start, req.End)

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	return bcdio.WriteJSON(path, out)
}
