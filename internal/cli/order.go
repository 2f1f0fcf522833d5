package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/buildgraph/pkg/depgraph/analyze"
	"github.com/matzehuels/buildgraph/pkg/errors"
)

// newOrderCmd creates the order command for build-order resolution.
func newOrderCmd() *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "order <manifest.toml>",
		Short: "Compute a linear build order",
		Long: `Compute a linear build order with a topological sort.

The default listing is dependents-first: a package appears before the
packages it depends on. Pass --install to reverse the listing so that
prerequisites come first.

A graph with a dependency cycle has no complete build order; the command
fails rather than printing a partial one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(cmd.Context(), args[0], reverse)
		},
	}

	cmd.Flags().BoolVar(&reverse, "install", false, "list prerequisites first (reversed order)")

	return cmd
}

// runOrder computes and prints the build order.
func runOrder(ctx context.Context, path string, reverse bool) error {
	logger := loggerFromContext(ctx)

	g, f, err := loadGraph(ctx, path)
	if err != nil {
		return err
	}

	// The sorter reports cycles itself, but checking first gives a precise
	// message instead of a length mismatch.
	if analyze.HasCycle(g) {
		printError("Dependency cycle detected - no build order exists")
		return errors.New(errors.ErrCodeCycleDetected, "dependency graph contains a cycle")
	}

	prog := newProgress(logger)
	ordered, err := analyze.Order(g)
	if err != nil {
		return errors.Wrap(errors.ErrCodeCycleDetected, err, "topological sort")
	}
	prog.done(fmt.Sprintf("Ordered %d packages", len(ordered)))

	if reverse {
		slices.Reverse(ordered)
	}

	if f.Project.Name != "" {
		printInfo("Build order for %s", StyleHighlight.Render(f.Project.Name))
	}
	for i, p := range ordered {
		printOrdered(i+1, p.String())
	}
	printStats(g.Len(), g.EdgeCount())
	return nil
}
