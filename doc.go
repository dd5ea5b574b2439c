// Package shortpath computes minimum-weight paths between two vertices of a
// weighted, undirected graph with Dijkstra's algorithm.
//
// The repository is organized as:
//
//	core/              Graph: fixed vertex set 0..n-1, symmetric weighted adjacency
//	                   lists, edge insertion, validation and the ShortestPath method
//	dijkstra/          the finder: min-heap frontier, lazy deletion of stale entries,
//	                   backpointer path reconstruction, full single-source Search
//	cmd/shortestpath/  demonstration command over the six-vertex sample graph
//
// Quick example:
//
//	g := core.NewGraph(3)
//	g.AddEdge(0, 1, 2)
//	g.AddEdge(1, 2, 2)
//	g.AddEdge(0, 2, 5)
//	path, ok := g.ShortestPath(0, 2) // [0 1 2], true
//
// Edge weights must be non-negative. An unreachable destination is reported
// as (nil, false), never as an error.
package shortpath
