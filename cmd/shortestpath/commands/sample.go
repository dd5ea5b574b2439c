package commands

import "github.com/katalvlaran/shortpath/core"

// sampleVertices is the vertex count of the demonstration graph.
const sampleVertices = 6

// sampleEdges are the nine undirected edges of the demonstration graph.
var sampleEdges = []core.Edge{
	{From: 0, To: 1, Weight: 7},
	{From: 0, To: 2, Weight: 9},
	{From: 0, To: 5, Weight: 14},
	{From: 1, To: 2, Weight: 10},
	{From: 1, To: 3, Weight: 15},
	{From: 2, To: 3, Weight: 11},
	{From: 2, To: 5, Weight: 2},
	{From: 3, To: 4, Weight: 6},
	{From: 4, To: 5, Weight: 9},
}

// SampleGraph returns a fresh copy of the demonstration graph. The shortest
// path from 0 to 4 is 0 → 2 → 5 → 4 with total weight 20.
func SampleGraph(opts ...core.GraphOption) *core.Graph {
	g := core.NewGraph(sampleVertices, opts...)
	for _, e := range sampleEdges {
		g.AddEdge(e.From, e.To, e.Weight)
	}

	return g
}
