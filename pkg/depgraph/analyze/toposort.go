package analyze

import (
	"errors"
	"slices"

	"github.com/matzehuels/buildgraph/pkg/depgraph"
)

// ErrCycleDetected is returned by [Order] when the graph contains a cycle
// and no complete build order exists. No partial order is returned.
var ErrCycleDetected = errors.New("dependency cycle detected")

// Order produces a linear build order using Kahn's algorithm.
//
// The order is dependents-first: a package appears before every package it
// depends on. In-degree here counts how many packages list a given package
// as a dependency, so the zero-in-degree seeds are the top-level packages
// nothing else requires, and dequeuing a package releases its dependencies.
// Consumers wanting an install-prerequisites-first sequence should reverse
// the result.
//
// Order computes a fresh in-degree snapshot from the edge sets on every
// call and leaves the graph's stored counters untouched, so it is safe to
// call repeatedly on the same graph. Ties are broken by (name, version),
// making the output deterministic for a given graph.
func Order(g *depgraph.Graph) ([]depgraph.Package, error) {
	indeg := make(map[depgraph.Package]int, g.Len())
	for _, p := range g.Packages() {
		indeg[p] = 0
	}
	for _, e := range g.Edges() {
		indeg[e.To]++
	}

	// Packages() is sorted, so the seed queue and every release below keep
	// the output deterministic.
	var queue []depgraph.Package
	for _, p := range g.Packages() {
		if indeg[p] == 0 {
			queue = append(queue, p)
		}
	}

	ordered := make([]depgraph.Package, 0, g.Len())
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		ordered = append(ordered, p)

		deps, _ := g.Dependencies(p)
		var released []depgraph.Package
		for _, dep := range deps {
			indeg[dep]--
			if indeg[dep] == 0 {
				released = append(released, dep)
			}
		}
		slices.SortFunc(released, depgraph.ComparePackages)
		queue = append(queue, released...)
	}

	if len(ordered) != g.Len() {
		return nil, ErrCycleDetected
	}
	return ordered, nil
}
