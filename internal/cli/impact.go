package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/buildgraph/pkg/depgraph"
	"github.com/matzehuels/buildgraph/pkg/depgraph/analyze"
	"github.com/matzehuels/buildgraph/pkg/errors"
)

// newImpactCmd creates the impact command for reverse-dependency queries.
func newImpactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "impact <manifest.toml> <name@version>",
		Short: "List the direct dependents of a package",
		Long: `List the packages that directly require the given package.

Only one-hop dependents are reported, not the transitive closure: the
listing answers "what breaks immediately if this package changes".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImpact(cmd.Context(), args[0], args[1])
		},
	}

	return cmd
}

// runImpact resolves the target reference and prints its direct dependents.
func runImpact(ctx context.Context, path, ref string) error {
	g, _, err := loadGraph(ctx, path)
	if err != nil {
		return err
	}

	target, err := depgraph.ParseRef(ref)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRef, err, "target package")
	}
	if !g.Exists(target) {
		return errors.New(errors.ErrCodePackageNotFound, "package %s is not in the graph", target.Ref())
	}

	dependents := analyze.Dependents(g, target)
	if len(dependents) == 0 {
		printInfo("Nothing depends on %s", StyleHighlight.Render(target.Ref()))
		return nil
	}

	printInfo("Impact of %s: %d direct dependent(s)", StyleHighlight.Render(target.Ref()), len(dependents))
	for _, p := range dependents {
		printDetail("%s %s %s", p.Ref(), iconArrow, target.Ref())
	}
	return nil
}
