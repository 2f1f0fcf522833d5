// Package analyze provides the read-only traversals that turn a dependency
// graph into actionable build information.
//
// The analyses are independent of each other and of graph construction:
//
//   - [HasCycle] detects directed cycles with a depth-first search
//   - [Order] produces a linear build order via Kahn's algorithm, or fails
//     with [ErrCycleDetected] when no complete order exists
//   - [HasConflict] and [Conflicts] flag edges whose endpoints disagree on
//     the version string
//   - [Dependents] answers impact queries: which packages directly require
//     a given package
//
// All functions treat the graph as immutable and may run concurrently over
// the same graph once construction is complete. Results that enumerate
// packages are sorted by (name, version) so output is reproducible; the
// graph itself guarantees no iteration order.
package analyze
