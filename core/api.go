// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries (Stats) and whole-graph validation (Validate).
// Policy:
//   - No mutation here.
//   - Validate reports every problem at once through go-multierror.

package core

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// GraphStats is a snapshot of graph size and weight range.
type GraphStats struct {
	VertexCount   int   // vertices fixed at construction
	EdgeCount     int   // inserted edges, parallel edges counted separately
	IsolatedCount int   // vertices with no adjacency entries
	LoopCount     int   // edges with From == To
	MinWeight     int64 // lightest edge weight; 0 when EdgeCount == 0
	MaxWeight     int64 // heaviest edge weight; 0 when EdgeCount == 0
}

// Stats returns a GraphStats snapshot.
// Complexity: O(V + E)
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		VertexCount: len(g.adjacency),
		EdgeCount:   len(g.edges),
	}
	for _, list := range g.adjacency {
		if len(list) == 0 {
			stats.IsolatedCount++
		}
	}
	for i, e := range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
		if i == 0 || e.Weight < stats.MinWeight {
			stats.MinWeight = e.Weight
		}
		if i == 0 || e.Weight > stats.MaxWeight {
			stats.MaxWeight = e.Weight
		}
	}

	return stats
}

// Validate checks the invariants the shortest-path finder relies on and
// returns a *multierror.Error listing every violation, or nil.
//
// AddEdge does not check its input, so a graph built with it may hold
// negative weights; each such edge is reported wrapping ErrNegativeWeight.
//
// Complexity: O(E)
func (g *Graph) Validate() error {
	var result *multierror.Error
	for _, e := range g.edges {
		if e.Weight < 0 {
			result = multierror.Append(result,
				fmt.Errorf("%w: edge %d—%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight))
		}
	}

	return result.ErrorOrNil()
}
