// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex in a
// graph with non-negative edge weights. It processes vertices in order of
// increasing distance using a min-heap priority queue, relaxing edges and
// updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation (Push/Pop) costs O(log N), where N ≤ V + E. Simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor tables.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - ShortestPath stops as soon as the destination is popped; Search runs to exhaustion.
//   - A popped entry whose distance exceeds the recorded distance is stale and skipped.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// ShortestPath returns the vertices of a minimum-weight path from source to
// destination, source first and destination last. The boolean is false when
// destination cannot be reached; the slice is nil in that case.
//
// source == destination yields [source]. Weights are assumed non-negative and
// are not checked; use Search for a validating run. A source outside
// [0, g.VertexCount()) panics like any out-of-bounds slice access.
//
// Complexity: O((V + E) log V) worst case; usually less thanks to the early exit.
func ShortestPath(g Graph, source, destination int, opts ...Option) ([]int, bool) {
	r := newRunner(g, source, destination, buildOptions(opts))
	if !r.process() {
		r.log.Debug("no path", "source", source, "destination", destination)

		return nil, false
	}

	path := reconstruct(r.prev, destination)
	r.log.Debug("path found",
		"source", source,
		"destination", destination,
		"distance", r.dist[destination],
		"vertices", len(path),
	)

	return path, true
}

// Search computes shortest distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be in [0, g.VertexCount()) (ErrVertexOutOfRange).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Search(g Graph, source int, opts ...Option) (*Result, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Validate source is a vertex of g
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d not in [0, %d)", ErrVertexOutOfRange, source, n)
	}

	// 3) Pre-scan all arcs to detect negative weights. Fail fast with ErrNegativeWeight.
	var bad error
	for u := 0; u < n && bad == nil; u++ {
		g.EachNeighbor(u, func(v int, w int64) {
			if w < 0 && bad == nil {
				bad = fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
			}
		})
	}
	if bad != nil {
		return nil, bad
	}

	// 4) Run without a destination so the loop drains the whole frontier.
	r := newRunner(g, source, NoVertex, buildOptions(opts))
	r.process()

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// buildOptions applies opts on top of DefaultOptions.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph        // The input graph; read-only within Dijkstra.
	options Options      // Configuration options (thresholds, logger).
	log     hclog.Logger // options.Logger, cached
	target  int          // destination vertex, or NoVertex for a full search
	dist    []int64      // vertex → current best distance from source
	prev    []int        // vertex → predecessor on the best known path
	pq      nodePQ       // Min-heap of *nodeItem for lazy priority queue.
}

// newRunner allocates per-query tables and seeds the frontier with (source, 0).
func newRunner(g Graph, source, target int, cfg Options) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		log:     cfg.Logger,
		target:  target,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		pq:      make(nodePQ, 0, n),
	}

	// 1) dist[v] = +∞ and prev[v] = none for every vertex.
	for v := range r.dist {
		r.dist[v] = Infinity
		r.prev[v] = NoVertex
	}

	// 2) Distance to the source is zero; push it as the only frontier entry.
	r.dist[source] = 0
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	return r
}

// process is the core loop. It repeatedly extracts the frontier entry with the
// minimum distance and relaxes its edges. It reports whether target was popped.
//
// Loop termination conditions:
//
//   - target is popped (its distance is final).
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() bool {
	trace := r.log.IsTrace()
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// 2) Destination reached: no shorter path can appear later.
		if u == r.target {
			return true
		}

		// 3) An outdated entry; a shorter distance for u was pushed after it.
		if d > r.dist[u] {
			if trace {
				r.log.Trace("skip stale entry", "vertex", u, "distance", d, "best", r.dist[u])
			}
			continue
		}

		// 4) Everything still queued is at least this far away.
		if d > r.options.MaxDistance {
			break
		}

		if trace {
			r.log.Trace("pop", "vertex", u, "distance", d)
		}
		r.relax(u, d, trace)
	}

	return false
}

// relax examines each adjacency entry of u and improves neighbour distances.
// If a shorter path to v is found we update dist[v], prev[v] and push a new heap entry.
func (r *runner) relax(u int, d int64, trace bool) {
	r.g.EachNeighbor(u, func(v int, w int64) {
		// Impassable edge.
		if w >= r.options.InfEdgeThreshold {
			return
		}
		// d + w would overflow; such a path can never beat a finite distance.
		if w > Infinity-d {
			return
		}

		cand := d + w
		if cand > r.options.MaxDistance || cand >= r.dist[v] {
			return
		}

		r.dist[v] = cand
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: cand})
		if trace {
			r.log.Trace("relax", "from", u, "to", v, "distance", cand)
		}
	})
}

// reconstruct follows prev backpointers from v to the source and returns the
// vertices in source→v order.
func reconstruct(prev []int, v int) []int {
	path := []int{v}
	for cur := prev[v]; cur != NoVertex; cur = prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int   // vertex ID
	dist int64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, then by id
// ascending so that equal-weight paths are resolved deterministically.
// Outdated entries stay in the heap and are ignored when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
