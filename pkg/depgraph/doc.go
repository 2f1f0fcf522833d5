// Package depgraph provides the dependency graph data model used for
// build-order resolution.
//
// # Overview
//
// A graph is keyed by [Package] identities - exact (name, version) pairs -
// and stores directed edges from a package to each package it requires.
// Alongside the adjacency sets the graph maintains an in-degree counter per
// package: the number of packages that list it as a dependency. The counter
// feeds Kahn's algorithm in the analyze subpackage.
//
// # Basic Usage
//
// Create a graph with [New], register packages with [Graph.AddPackage], and
// declare edges with [Graph.AddDependency]:
//
//	g := depgraph.New()
//	app := depgraph.Package{Name: "app", Version: "1.0.0"}
//	lib := depgraph.Package{Name: "lib", Version: "1.0.0"}
//	g.AddPackage(app)
//	g.AddPackage(lib)
//	g.AddDependency(app, lib)
//
// AddDependency registers unknown endpoints on first reference, so manifest
// loaders may declare edges without pre-registering every package.
//
// # Lifecycle
//
// Graphs are write-once-then-read: build the full graph, then run analyses.
// There is no deletion. [Graph.AddPackage] resets the package's in-degree
// counter to zero, so register packages before declaring edges that point at
// them. [Graph.ResetInDegrees] rebuilds every counter from the edge sets for
// callers that drive the stored counters through [Graph.SetInDegree].
//
// # Concurrency
//
// Graph instances are not safe for concurrent mutation. Once construction is
// complete the read-only analyses in the analyze subpackage may run
// concurrently over the same graph.
package depgraph
