package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/fliesfaries/bcdsweep/pkg/bcd"
	"github.com/fliesfaries/bcdsweep/pkg/bcdio"
	"github.com/fliesfaries/bcdsweep/pkg/coverage"
)

type planOpts struct {
	input  string
	output string
	radius int
	start  int
}

func newPlanCmd() *cobra.Command {
	opts := planOpts{radius: 0, start: 0}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Decompose a workspace and plan a full-coverage path",
		Long:  `plan reads a workspace and its obstacles, runs boustrophedon cellular decomposition, walks the resulting cell graph, and emits a serpentine coverage path per cell.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input JSON file (stdin if empty)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output JSON file (stdout if empty)")
	cmd.Flags().IntVarP(&opts.radius, "radius", "r", opts.radius, "robot radius in grid cells")
	cmd.Flags().IntVar(&opts.start, "start", opts.start, "cell index to begin the walk from")

	return cmd
}

func runPlan(cmd *cobra.Command, opts *planOpts) error {
	logger := loggerFromContext(cmd.Context())

	in, err := openInput(opts.input)
	if err != nil {
		return err
	}
	defer in.Close()

	problem, err := bcdio.ReadInput(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	prog := newSpinner(fmt.Sprintf("decomposing %d obstacles", len(problem.Obstacles)))
	prog.Start()

	graph, err := bcd.Decompose(problem.Workspace, problem.Obstacles, bcd.WithLogger(func(msg string, args ...any) {
		logger.Debugf(msg, args...)
	}))
	if err != nil {
		prog.Stop()
		return fmt.Errorf("decomposing workspace: %w", err)
	}
	prog.Stop()
	logger.Infof("decomposed workspace into %d cells", graph.Len())

	if opts.start < 0 || opts.start >= graph.Len() {
		return fmt.Errorf("start cell %d out of range [0,%d)", opts.start, graph.Len())
	}

	order := bcd.Walk(graph, opts.start)
	paths := coverage.Plan(graph, order, opts.radius)
	logger.Infof("planned coverage for %d cells", len(paths))

	result := bcdio.PlanResult{
		Workspace:     problem.Workspace,
		Cells:         bcdio.NewCellResults(graph),
		VisitOrder:    order,
		CoveragePaths: paths,
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := bcdio.WriteJSON(result, out); err != nil {
		return fmt.Errorf("writing plan: %w", err)
	}
	if opts.output != "" {
		logger.Infof("wrote plan to %s", opts.output)
	}
	return nil
}

// newSpinner builds a cyan progress spinner, following
// eng618-parable-bloom's pkg/ui.NewSpinner pattern.
func newSpinner(suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + suffix
	_ = s.Color("cyan", "bold")
	return s
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

type nopReadCloser struct{ io.Reader }

func (nopReadCloser) Close() error { return nil }

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return nopReadCloser{os.Stdin}, nil
	}
	return os.Open(path)
}
