// SPDX-License-Identifier: MIT
//
// Package core defines the Graph, Edge and Neighbor types used by the
// shortest-path finder, together with the sentinel errors and options of
// graph construction.
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph was called with a negative vertex count (panic).
//	ErrVertexOutOfRange    - a vertex id is outside [0, VertexCount).
//	ErrNegativeWeight      - an edge weight is below zero.
package core

import (
	"errors"

	"github.com/hashicorp/go-hclog"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates NewGraph received a negative vertex count.
	ErrNegativeVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an operation referenced a vertex id outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Neighbor is one entry of a vertex's adjacency list: the vertex at the
// other end of an edge and the weight of that edge.
type Neighbor struct {
	// To is the adjacent vertex id.
	To int

	// Weight is the cost of traversing the edge.
	Weight int64
}

// Edge is an undirected weighted connection as it was inserted.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLogger sets the logger used for insertion tracing. Queries issued
// through (*Graph).ShortestPath inherit it unless they pass their own.
// A nil logger is ignored.
func WithLogger(l hclog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// Graph is an undirected weighted graph over the vertices 0..n-1, where n is
// fixed at construction.
//
// adjacency[v] holds v's neighbor entries in insertion order. Every edge
// (u,v,w) is stored twice: (v,w) in adjacency[u] and (u,w) in adjacency[v].
// edges keeps each insertion once, also in insertion order.
//
// Graph is not safe for concurrent mutation. Concurrent reads (including
// shortest-path queries) are safe while nobody calls an Add method.
type Graph struct {
	adjacency [][]Neighbor
	edges     []Edge
	log       hclog.Logger
}

// NewGraph creates a Graph with vertexCount isolated vertices.
// vertexCount may be zero. A negative vertexCount panics with ErrNegativeVertexCount.
// Complexity: O(V)
func NewGraph(vertexCount int, opts ...GraphOption) *Graph {
	if vertexCount < 0 {
		panic(ErrNegativeVertexCount.Error())
	}
	g := &Graph{
		adjacency: make([][]Neighbor, vertexCount),
		log:       hclog.NewNullLogger(),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
