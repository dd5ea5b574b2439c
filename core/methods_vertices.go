// SPDX-License-Identifier: MIT

package core

// VertexCount returns the number of vertices fixed at construction.
// Complexity: O(1)
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// HasVertex reports whether v is in [0, VertexCount).
// Complexity: O(1)
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adjacency) }

// Degree returns the number of adjacency entries of v (a self-loop counts twice).
// Out-of-range ids have degree 0.
// Complexity: O(1)
func (g *Graph) Degree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.adjacency[v])
}

// Neighbors returns a copy of v's adjacency list in insertion order.
// Out-of-range ids and isolated vertices return nil.
// Complexity: O(deg(v))
func (g *Graph) Neighbors(v int) []Neighbor {
	if g.Degree(v) == 0 {
		return nil
	}
	out := make([]Neighbor, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out
}

// EachNeighbor calls fn for every adjacency entry of v in insertion order,
// without copying. fn must not add edges to g.
// Out-of-range ids are treated as isolated vertices.
// Complexity: O(deg(v))
func (g *Graph) EachNeighbor(v int, fn func(to int, weight int64)) {
	if !g.HasVertex(v) {
		return
	}
	for _, nb := range g.adjacency[v] {
		fn(nb.To, nb.Weight)
	}
}
