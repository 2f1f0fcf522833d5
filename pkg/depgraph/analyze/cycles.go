package analyze

import "github.com/matzehuels/buildgraph/pkg/depgraph"

// HasCycle reports whether the graph contains a directed cycle, including
// self-dependencies. It runs a white/gray/black depth-first search from every
// unvisited package, so disconnected components are covered. A graph with no
// edges is acyclic regardless of package count.
func HasCycle(g *depgraph.Graph) bool {
	const (
		white = iota
		gray
		black
	)

	color := make(map[depgraph.Package]int, g.Len())
	var found bool

	var dfs func(p depgraph.Package)
	dfs = func(p depgraph.Package) {
		color[p] = gray
		deps, _ := g.Dependencies(p) // every edge endpoint is registered
		for _, dep := range deps {
			switch color[dep] {
			case white:
				dfs(dep)
				if found {
					return
				}
			case gray:
				found = true
				return
			}
		}
		color[p] = black
	}

	for _, p := range g.Packages() {
		if color[p] == white {
			dfs(p)
			if found {
				return true
			}
		}
	}
	return false
}
