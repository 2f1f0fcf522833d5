package cli

import (
	"context"

	"github.com/matzehuels/buildgraph/pkg/depgraph"
	"github.com/matzehuels/buildgraph/pkg/manifest"
)

// loadGraph reads the manifest at path and builds its dependency graph.
// The manifest is returned alongside the graph so commands can report
// project metadata.
func loadGraph(ctx context.Context, path string) (*depgraph.Graph, *manifest.File, error) {
	logger := loggerFromContext(ctx)
	logger.Debugf("Loading manifest %s", path)

	f, err := manifest.Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := f.Graph()
	if err != nil {
		return nil, nil, err
	}
	logger.Debugf("Loaded %d packages with %d edges", g.Len(), g.EdgeCount())
	return g, f, nil
}
