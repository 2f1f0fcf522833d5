package analyze

import "github.com/matzehuels/buildgraph/pkg/depgraph"

// Compatible reports whether two packages agree on their version string.
// This is an exact string comparison: the policy is that a package and every
// direct dependency share the same version, with no range semantics.
func Compatible(a, b depgraph.Package) bool {
	return a.Version == b.Version
}

// Conflict records an edge whose endpoints carry different versions.
type Conflict struct {
	Package    depgraph.Package // the dependent
	Dependency depgraph.Package // the dependency it disagrees with
}

// HasConflict reports whether any edge connects packages with mismatched
// versions, stopping at the first finding.
func HasConflict(g *depgraph.Graph) bool {
	for _, e := range g.Edges() {
		if !Compatible(e.From, e.To) {
			return true
		}
	}
	return false
}

// Conflicts returns every mismatched edge, sorted by source then target.
// Returns nil when the graph has no conflicts.
func Conflicts(g *depgraph.Graph) []Conflict {
	var out []Conflict
	for _, e := range g.Edges() {
		if !Compatible(e.From, e.To) {
			out = append(out, Conflict{Package: e.From, Dependency: e.To})
		}
	}
	return out
}
