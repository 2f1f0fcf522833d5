package depgraph

import (
	"errors"
	"fmt"
	"slices"
)

// ErrPackageNotFound is returned by [Graph.Dependencies] and [Graph.InDegree]
// when the queried package was never registered in the graph.
var ErrPackageNotFound = errors.New("package not registered")

// Edge represents a directed dependency: From requires To.
type Edge struct {
	From Package
	To   Package
}

// Graph is a directed dependency graph keyed by (name, version) identities.
//
// Each registered package owns a set of direct dependencies, so declaring the
// same dependency twice collapses to a single edge. The graph also maintains
// an in-degree counter per package: the number of packages that list it as a
// dependency. Counters are kept incrementally by [Graph.AddDependency] and
// can be rebuilt from the edge sets with [Graph.ResetInDegrees].
//
// The zero value is not usable - use [New]. Graph is not safe for concurrent
// mutation.
type Graph struct {
	adjacency map[Package]map[Package]struct{}
	inDegree  map[Package]int
}

// New creates an empty dependency graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[Package]map[Package]struct{}),
		inDegree:  make(map[Package]int),
	}
}

// AddPackage registers p in the graph. It is idempotent with respect to the
// adjacency set: an existing package keeps its dependencies. The in-degree
// counter is reset to zero either way, so packages should be registered
// before edges pointing at them are declared.
func (g *Graph) AddPackage(p Package) {
	if _, ok := g.adjacency[p]; !ok {
		g.adjacency[p] = make(map[Package]struct{})
	}
	g.inDegree[p] = 0
}

// AddDependency records that p requires dep and increments dep's in-degree
// counter. Both endpoints are registered on first reference, so callers may
// declare edges without calling [Graph.AddPackage] first. Declaring an edge
// that already exists is a no-op, including for the counter.
//
// Self-dependencies are not rejected here; they surface as cycles during
// analysis.
func (g *Graph) AddDependency(p, dep Package) {
	if _, ok := g.adjacency[p]; !ok {
		g.adjacency[p] = make(map[Package]struct{})
		g.inDegree[p] = 0
	}
	if _, ok := g.adjacency[dep]; !ok {
		g.adjacency[dep] = make(map[Package]struct{})
		g.inDegree[dep] = 0
	}
	if _, ok := g.adjacency[p][dep]; ok {
		return
	}
	g.adjacency[p][dep] = struct{}{}
	g.inDegree[dep]++
}

// Dependencies returns the direct dependencies of p sorted by (name, version).
// Returns ErrPackageNotFound if p was never registered.
func (g *Graph) Dependencies(p Package) ([]Package, error) {
	set, ok := g.adjacency[p]
	if !ok {
		return nil, fmt.Errorf("%s: %w", p.Ref(), ErrPackageNotFound)
	}
	deps := make([]Package, 0, len(set))
	for dep := range set {
		deps = append(deps, dep)
	}
	slices.SortFunc(deps, ComparePackages)
	return deps, nil
}

// DependsOn reports whether the graph contains the edge p -> dep.
func (g *Graph) DependsOn(p, dep Package) bool {
	_, ok := g.adjacency[p][dep]
	return ok
}

// InDegree returns p's current in-degree counter: how many packages list p
// as a dependency. Returns ErrPackageNotFound if p was never registered.
func (g *Graph) InDegree(p Package) (int, error) {
	n, ok := g.inDegree[p]
	if !ok {
		return 0, fmt.Errorf("%s: %w", p.Ref(), ErrPackageNotFound)
	}
	return n, nil
}

// SetInDegree overwrites p's in-degree counter. The counter is stored even
// for unregistered packages, matching the permissive write behavior of the
// adjacency structure. Use [Graph.ResetInDegrees] to restore counters
// consistent with the edge sets.
func (g *Graph) SetInDegree(p Package, n int) {
	g.inDegree[p] = n
}

// ResetInDegrees rebuilds every in-degree counter from the edge sets,
// discarding any values written through [Graph.SetInDegree].
func (g *Graph) ResetInDegrees() {
	for p := range g.inDegree {
		g.inDegree[p] = 0
	}
	for p := range g.adjacency {
		g.inDegree[p] = 0
	}
	for _, set := range g.adjacency {
		for dep := range set {
			g.inDegree[dep]++
		}
	}
}

// Exists reports whether p is registered in the graph.
func (g *Graph) Exists(p Package) bool {
	_, ok := g.adjacency[p]
	return ok
}

// Packages returns all registered packages sorted by (name, version).
func (g *Graph) Packages() []Package {
	pkgs := make([]Package, 0, len(g.adjacency))
	for p := range g.adjacency {
		pkgs = append(pkgs, p)
	}
	slices.SortFunc(pkgs, ComparePackages)
	return pkgs
}

// Edges returns every edge in the graph, sorted by source then target.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for p, set := range g.adjacency {
		for dep := range set {
			edges = append(edges, Edge{From: p, To: dep})
		}
	}
	slices.SortFunc(edges, func(a, b Edge) int {
		if c := ComparePackages(a.From, b.From); c != 0 {
			return c
		}
		return ComparePackages(a.To, b.To)
	})
	return edges
}

// Len returns the number of registered packages.
func (g *Graph) Len() int { return len(g.adjacency) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, set := range g.adjacency {
		n += len(set)
	}
	return n
}
