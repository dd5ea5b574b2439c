// Package dijkstra provides Dijkstra's shortest-path algorithm on weighted
// graphs with non-negative edge weights and integer vertex identifiers.
//
// Overview:
//
//   - ShortestPath finds one minimum-weight path between two vertices and stops
//     as soon as the destination leaves the priority queue.
//   - Search computes the full distance and predecessor tables from a source,
//     validating its inputs first.
//   - Both rely on a min-heap (container/heap) ordered by tentative distance,
//     with ties broken by ascending vertex id.
//
// When to use:
//
//   - Point-to-point routing on a static weighted graph: ShortestPath.
//   - Many destinations from the same source: one Search, then Result.PathTo per destination.
//
// Key features:
//
//   - Lazy decrease-key: improved distances are pushed as new heap entries and
//     stale entries are discarded when popped, so no indexed heap is needed.
//   - Backpointer reconstruction: O(V) predecessor storage instead of a path per vertex.
//   - Functional options: WithLogger, WithMaxDistance, WithInfEdgeThreshold.
//   - Works with any type implementing Graph (core.Graph does).
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Error handling:
//
//   - ShortestPath never returns an error. An unreachable destination is reported
//     as (nil, false); a source outside [0, VertexCount) panics with an index error.
//   - Search returns ErrNilGraph, ErrVertexOutOfRange or ErrNegativeWeight
//     (wrapped with context; test with errors.Is).
//   - WithMaxDistance and WithInfEdgeThreshold panic on invalid arguments.
//
// Thread safety:
//
//   - Each call allocates its own tables and heap. Concurrent queries on a graph
//     nobody is mutating are safe; mutation during a query must be synchronized
//     by the caller.
//
// Example:
//
//	g := core.NewGraph(3)
//	g.AddEdge(0, 1, 4)
//	g.AddEdge(1, 2, 1)
//	path, ok := dijkstra.ShortestPath(g, 0, 2) // [0 1 2], true
package dijkstra
