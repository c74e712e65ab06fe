package cli

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/spf13/cobra"
)

type graphOpts struct {
	input  string
	output string
	format string
}

func newGraphCmd() *cobra.Command {
	opts := graphOpts{format: "png"}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render a plan's cell adjacency graph",
		Long:  `graph reads a plan JSON file (as produced by "bcdsweep plan") and renders its cell adjacency graph — nodes and edges only, not the coverage paths themselves.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "plan JSON file (stdin if empty)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "graph.png", "output image file")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "graphviz output format (png, svg, dot)")

	return cmd
}

// planCells is the subset of bcdio.PlanResult this command needs; it
// avoids importing pkg/bcdio only to decode the adjacency list.
type planCells struct {
	Cells []struct {
		Index     int   `json:"index"`
		Neighbors []int `json:"neighbors"`
	} `json:"cells"`
}

func runGraph(cmd *cobra.Command, opts *graphOpts) error {
	logger := loggerFromContext(cmd.Context())

	in, err := openInput(opts.input)
	if err != nil {
		return err
	}
	defer in.Close()

	var plan planCells
	if err := json.NewDecoder(in).Decode(&plan); err != nil {
		return fmt.Errorf("reading plan: %w", err)
	}

	gv := graphviz.New()
	defer gv.Close()

	g, err := gv.Graph()
	if err != nil {
		return fmt.Errorf("creating graph: %w", err)
	}
	defer g.Close()

	nodes := make(map[int]*cgraph.Node, len(plan.Cells))
	for _, cell := range plan.Cells {
		n, err := g.CreateNode(fmt.Sprintf("cell%d", cell.Index))
		if err != nil {
			return fmt.Errorf("creating node for cell %d: %w", cell.Index, err)
		}
		if err := n.SetLabel(fmt.Sprintf("cell %d", cell.Index)); err != nil {
			return fmt.Errorf("labeling cell %d: %w", cell.Index, err)
		}
		nodes[cell.Index] = n
	}

	edges := 0
	for _, cell := range plan.Cells {
		for _, nb := range cell.Neighbors {
			if nb < cell.Index {
				continue // each undirected adjacency appears on both cells; emit it once
			}
			if _, err := g.CreateEdge("", nodes[cell.Index], nodes[nb]); err != nil {
				return fmt.Errorf("creating edge %d-%d: %w", cell.Index, nb, err)
			}
			edges++
		}
	}
	logger.Infof("rendering %d cells and %d adjacency edges", len(plan.Cells), edges)

	format := graphviz.Format(opts.format)
	if err := gv.RenderFilename(g, format, opts.output); err != nil {
		return fmt.Errorf("rendering graph: %w", err)
	}
	logger.Infof("wrote cell adjacency graph to %s", opts.output)
	return nil
}
