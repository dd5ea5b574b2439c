// Package core provides the in-memory, undirected, weighted Graph consumed by
// the shortest-path finder.
//
// The Graph G = (V,E) has a fixed vertex set V = {0, …, n-1} chosen at
// construction and grows only by edge insertion:
//
//   - Symmetric adjacency lists: AddEdge(u, v, w) appends (v,w) to u's list
//     and (u,w) to v's list.
//   - Parallel edges and self-loops are kept as given; relaxation in the
//     finder picks the cheapest one implicitly.
//   - Insertion-ordered iteration: Neighbors, EachNeighbor and Edges return
//     entries in the order they were added.
//   - No removal, no reweighting.
//
// Configuration Options (GraphOption):
//
//	– WithLogger(hclog.Logger)
//	    Trace-level insertion logging; also the default logger of ShortestPath queries.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int, opts ...GraphOption) *Graph     // O(V)
//
//	// Edge insertion
//	AddEdge(u, v int, w int64)                      // O(1)†, unchecked
//	AddEdgeChecked(u, v int, w int64) error         // O(1)†, ErrVertexOutOfRange / ErrNegativeWeight
//	AddEdges(edges ...Edge) error                   // O(k), *multierror.Error of rejected edges
//
//	// Query
//	VertexCount() int, EdgeCount() int, HasVertex(v) bool
//	HasEdge(u, v) bool, Weight(u, v) (int64, bool)  // O(deg(u))
//	Degree(v) int, Neighbors(v) []Neighbor, EachNeighbor(v, fn)
//	Edges() []Edge, Stats() GraphStats
//
//	// Shortest paths
//	ShortestPath(src, dst int, opts ...dijkstra.Option) ([]int, bool)
//	PathWeight(path []int) (int64, bool)
//	Validate() error                                // negative weights, all at once
//
// † amortized slice append.
//
// Concurrency:
//
//	Graph carries no locks. Any number of goroutines may query a graph that is
//	no longer being mutated; mutation concurrent with anything else must be
//	synchronized by the caller.
//
// Example:
//
//	g := core.NewGraph(4)
//	g.AddEdge(0, 1, 7)
//	g.AddEdge(1, 2, 3)
//	path, ok := g.ShortestPath(0, 2) // [0 1 2], true
//	_, ok = g.ShortestPath(0, 3)     // vertex 3 is isolated: ok == false
package core
