// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion (AddEdge, AddEdgeChecked, AddEdges) and edge queries
//       (HasEdge, Weight, Edges, EdgeCount).
// Determinism:
//   - Edges() and adjacency lists keep insertion order.
// Invariants:
//   - Every accepted edge appears once in the catalogue and once in each endpoint's list.

package core

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// AddEdge inserts the undirected edge u—v with the given weight.
//
// (v, weight) is appended to u's adjacency list and (u, weight) to v's.
// Parallel edges are kept as separate entries; a self-loop adds two entries
// to u's list. Nothing is validated: ids outside [0, VertexCount) panic on
// the slice access, and negative weights are stored as given (see Validate).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight int64) {
	g.adjacency[u] = append(g.adjacency[u], Neighbor{To: v, Weight: weight})
	g.adjacency[v] = append(g.adjacency[v], Neighbor{To: u, Weight: weight})
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: weight})
	g.log.Trace("edge added", "u", u, "v", v, "weight", weight)
}

// AddEdgeChecked is AddEdge for untrusted input. It inserts nothing and
// returns an error wrapping ErrVertexOutOfRange or ErrNegativeWeight when
// the edge is invalid.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdgeChecked(u, v int, weight int64) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %d—%d weight=%d", ErrNegativeWeight, u, v, weight)
	}
	g.AddEdge(u, v, weight)

	return nil
}

// AddEdges inserts every valid edge of the batch and skips the rest.
// The returned error is a *multierror.Error with one entry per rejected
// edge (each wrapping the sentinel from AddEdgeChecked), or nil.
//
// Complexity: O(len(edges)) amortized.
func (g *Graph) AddEdges(edges ...Edge) error {
	var result *multierror.Error
	for i, e := range edges {
		if err := g.AddEdgeChecked(e.From, e.To, e.Weight); err != nil {
			result = multierror.Append(result, fmt.Errorf("edge #%d: %w", i, err))
		}
	}

	return result.ErrorOrNil()
}

// HasEdge reports whether at least one edge u—v exists.
// Out-of-range ids report false.
// Complexity: O(deg(u))
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Weight returns the weight of the lightest edge u—v.
// The boolean is false if u and v are not adjacent or either id is out of range.
// Complexity: O(deg(u))
func (g *Graph) Weight(u, v int) (int64, bool) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return 0, false
	}
	var (
		best  int64
		found bool
	)
	for _, nb := range g.adjacency[u] {
		if nb.To == v && (!found || nb.Weight < best) {
			best, found = nb.Weight, true
		}
	}

	return best, found
}

// Edges returns a copy of the edge catalogue in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of inserted edges (parallel edges counted separately).
// Complexity: O(1)
func (g *Graph) EdgeCount() int { return len(g.edges) }

// checkVertex returns a wrapped ErrVertexOutOfRange if v is not a vertex of g.
func (g *Graph) checkVertex(v int) error {
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, v, len(g.adjacency))
	}

	return nil
}
