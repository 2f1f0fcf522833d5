package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/buildgraph/pkg/errors"
	"github.com/matzehuels/buildgraph/pkg/render/dot"
)

// Output formats supported by the render command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// newRenderCmd creates the render command for graph visualization export.
func newRenderCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "render <manifest.toml>",
		Short: "Export the dependency graph as DOT, SVG, or PNG",
		Long: `Export the dependency graph as a Graphviz visualization.

The DOT output enumerates one line per dependency edge, with each package
labeled "name version". Edges are sorted so the same manifest always
produces identical output.

SVG and PNG are rendered in-process with an embedded Graphviz build - no
system Graphviz installation is needed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot, svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout for dot if empty)")

	return cmd
}

// runRender marshals the graph to DOT and writes the requested format.
func runRender(ctx context.Context, path, format, output string) error {
	g, _, err := loadGraph(ctx, path)
	if err != nil {
		return err
	}

	text := dot.Marshal(g)

	switch format {
	case formatDOT:
		if output == "" {
			fmt.Print(text)
			return nil
		}
		if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
		}
	case formatSVG, formatPNG:
		if output == "" {
			output = deriveOutput(path, format)
		}
		data, err := renderImage(ctx, text, format)
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (available: dot, svg, png)", format)
	}

	printSuccess("Rendered %s", format)
	printFile(output)
	return nil
}

// renderImage rasterizes DOT text with a spinner covering the graphviz run.
func renderImage(ctx context.Context, text, format string) ([]byte, error) {
	stop := spin(ctx, fmt.Sprintf("Rendering %s...", format))
	defer stop()

	if format == formatSVG {
		return dot.RenderSVG(ctx, text)
	}
	return dot.RenderPNG(ctx, text)
}

// deriveOutput replaces the manifest extension with the render format.
// "deps/build.toml" with format "svg" becomes "deps/build.svg".
func deriveOutput(manifestPath, format string) string {
	base := strings.TrimSuffix(manifestPath, filepath.Ext(manifestPath))
	return base + "." + format
}
