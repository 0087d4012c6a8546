// Package dfs implements depth‑first algorithms on a directed core.Graph.
//
// What:
//
//   - TopologicalSort: computes a linear ordering of vertices in a directed
//     acyclic graph (DAG), returning ErrCycleDetected if cycles exist.
//   - FindCycle: reports one directed cycle, canonicalized to its minimal
//     rotation so the result is stable across runs.
//
// Why:
//   - Determine safe orderings from pairwise "must come before" rules
//   - Explain an ordering failure by naming the offending cycle
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - TopoOption: functional options (cancellation)
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - FindCycle:       Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrCycleDetected   cycle discovered during TopologicalSort
//   - context.Canceled   sort canceled via context
package dfs
