// SPDX-License-Identifier: MIT

package core

import (
	"github.com/katalvlaran/shortpath/dijkstra"
)

var _ dijkstra.Graph = (*Graph)(nil)

// ShortestPath returns a minimum-weight path from source to destination,
// source first and destination last, or (nil, false) if destination is
// unreachable. source == destination yields [source].
//
// The graph's logger is used unless opts supply one. A source outside
// [0, VertexCount) is a contract violation and panics.
//
// Complexity: O((V + E) log V)
func (g *Graph) ShortestPath(source, destination int, opts ...dijkstra.Option) ([]int, bool) {
	all := make([]dijkstra.Option, 0, len(opts)+1)
	all = append(all, dijkstra.WithLogger(g.log))
	all = append(all, opts...)

	return dijkstra.ShortestPath(g, source, destination, all...)
}

// PathWeight returns the total weight of walking path, using the lightest
// edge between each consecutive pair. The boolean is false if path is empty
// or some consecutive pair is not adjacent. A single vertex weighs 0.
// Complexity: O(Σ deg(path[i]))
func (g *Graph) PathWeight(path []int) (int64, bool) {
	if len(path) == 0 || !g.HasVertex(path[0]) {
		return 0, false
	}
	var total int64
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		if !ok {
			return 0, false
		}
		total += w
	}

	return total, true
}
