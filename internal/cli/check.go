package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/buildgraph/pkg/depgraph/analyze"
	"github.com/matzehuels/buildgraph/pkg/errors"
)

// newCheckCmd creates the check command for cycle and conflict detection.
func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <manifest.toml>",
		Short: "Detect dependency cycles and version conflicts",
		Long: `Detect dependency cycles and version conflicts.

The check command loads a build manifest and runs two analyses:

  1. Cycle detection: a depth-first search over every component. A cycle
     makes a consistent build order impossible and always fails the check.
  2. Conflict detection: every dependency edge is expected to connect
     packages with the same exact version string. Mismatched edges are
     reported as warnings, or fail the check with --strict.

Run check before 'order' - a cyclic graph has no complete build order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat version conflicts as errors")

	return cmd
}

// runCheck executes cycle and conflict detection and reports the results.
func runCheck(ctx context.Context, path string, strict bool) error {
	g, _, err := loadGraph(ctx, path)
	if err != nil {
		return err
	}

	if analyze.HasCycle(g) {
		printError("Dependency cycle detected - no build order exists")
		return errors.New(errors.ErrCodeCycleDetected, "dependency graph contains a cycle")
	}
	printSuccess("No dependency cycles")

	conflicts := analyze.Conflicts(g)
	if len(conflicts) == 0 {
		printSuccess("No version conflicts")
		printStats(g.Len(), g.EdgeCount())
		return nil
	}

	for _, c := range conflicts {
		printWarning("Version conflict: %s requires %s", c.Package.Ref(), c.Dependency.Ref())
	}
	printStats(g.Len(), g.EdgeCount())

	if strict {
		return errors.New(errors.ErrCodeVersionConflict, "%d version conflict(s)", len(conflicts))
	}
	return nil
}
