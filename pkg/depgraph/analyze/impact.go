package analyze

import "github.com/matzehuels/buildgraph/pkg/depgraph"

// Dependents returns the packages that directly require target, sorted by
// (name, version). Only one-hop dependents are reported - callers wanting
// the transitive blast radius should iterate. Returns nil when nothing
// depends on target, including when target is not in the graph.
func Dependents(g *depgraph.Graph, target depgraph.Package) []depgraph.Package {
	var out []depgraph.Package
	for _, p := range g.Packages() {
		if g.DependsOn(p, target) {
			out = append(out, p)
		}
	}
	return out
}
