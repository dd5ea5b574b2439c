// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Logger:           hclog.Logger receiving Trace/Debug events (null logger by default).
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph is nil.
//	– ErrVertexOutOfRange if the source vertex is outside [0, VertexCount).
//	– ErrNegativeWeight   if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/hashicorp/go-hclog"
)

// NoVertex marks "no predecessor" in a predecessor table.
const NoVertex = -1

// Infinity is the distance recorded for vertices that were never reached.
const Infinity = int64(math.MaxInt64)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil Graph was passed to Search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexOutOfRange indicates that the source vertex is not in [0, VertexCount).
	ErrVertexOutOfRange = errors.New("dijkstra: vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Graph is the read-only view of a weighted graph the algorithm needs.
// Vertices are the integers 0..VertexCount()-1.
//
// EachNeighbor calls fn once per adjacency entry of v, in insertion order.
// Undirected graphs must report every edge from both endpoints.
type Graph interface {
	VertexCount() int
	EachNeighbor(v int, fn func(to int, weight int64))
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Logger           – receives Trace events for every pop, stale skip and relaxation,
//
//	and a Debug event summarising the query.
//
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	Logger           hclog.Logger // Diagnostic sink; never nil after DefaultOptions
	MaxDistance      int64        // Maximum distance to explore
	InfEdgeThreshold int64        // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithLogger routes the algorithm's diagnostics to l. A nil logger is ignored.
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Invalid configuration is a programming error; fail at option construction.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Edges with weight ≥ threshold are skipped entirely.
// Must pass a positive value; zero or negative panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults that
// reproduce the plain algorithm exactly.
//
// Defaults:
//   - Logger:           hclog.NewNullLogger().
//   - MaxDistance:      math.MaxInt64 (no distance limit; explore all reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
func DefaultOptions() Options {
	return Options{
		Logger:           hclog.NewNullLogger(),
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Result holds the distance and predecessor tables of a complete
// single-source run, one slot per vertex.
//
//   - Dist[v] is the minimal distance from Source to v, or Infinity if unreachable.
//   - Prev[v] is the predecessor of v on one shortest path, or NoVertex
//     for the source and for unreachable vertices.
type Result struct {
	Source int
	Dist   []int64
	Prev   []int
}

// DistanceTo returns the shortest distance from the source to v.
// The boolean is false when v is unreachable or out of range.
func (r *Result) DistanceTo(v int) (int64, bool) {
	if v < 0 || v >= len(r.Dist) || r.Dist[v] == Infinity {
		return Infinity, false
	}

	return r.Dist[v], true
}

// PathTo reconstructs the path from the source to v, source first.
// Returns (nil, false) if v was not reached.
func (r *Result) PathTo(v int) ([]int, bool) {
	if _, ok := r.DistanceTo(v); !ok {
		return nil, false
	}

	return reconstruct(r.Prev, v), true
}
