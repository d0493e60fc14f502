// Package dijkstra implements the priority-queue shortest-path engine.
//
// Dijkstra computes the minimum-cost distance from a single source to every
// reachable node of a graph with non-negative edge weights. Nodes are expanded
// in order of increasing tentative distance from a min-heap.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is settled at most once: V extractions.
//   - Each successful relaxation pushes one heap entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor maps.
//   - O(E) worst-case heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - The heap is keyed by tentative distance to the candidate node (never by edge weight).
//   - Lazy decrease-key: improved distances are pushed as new entries; a popped
//     entry whose distance is worse than the best known one, or whose node is
//     already settled, is discarded.
//   - Negative weights are not detected unless WithStrictWeights is given. Without
//     it the run still terminates (each node is settled once) but the distances are
//     undefined. Use bellmanford for graphs that may hold negative weights.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/shortest"
)

// Dijkstra computes shortest distances from source to every node of g.
//
// The source need not exist in g: in that case (and for an empty graph) the
// result holds the source at distance 0 and every other key at Infinity.
// Disconnected nodes keep Infinity and no predecessor.
//
// The run works on g.Snapshot(), so concurrent mutations of g are either fully
// visible or not visible at all.
//
// Returns:
//
//   - *shortest.Result: a fresh distance/predecessor value owned by the caller.
//   - err: ErrNilGraph, or ErrNegativeWeight (wrapped with the edge) in strict mode.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*shortest.Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Freeze the topology for this run.
	snap := g.Snapshot()

	// 4) Optional pre-scan for negative weights.
	if cfg.StrictWeights {
		for _, e := range snap.Edges() {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	// 5) Initialize runner and run the main loop.
	r := &runner{
		snap:    snap,
		options: cfg,
		res:     shortest.New(source, snap.Vertices()),
		settled: make(map[int]bool, snap.VertexCount()),
		pq:      make(nodePQ, 0, snap.VertexCount()),
	}
	r.init()
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	snap    *core.Snapshot   // frozen topology; read-only
	options Options          // thresholds
	res     *shortest.Result // distances and predecessors being built
	settled map[int]bool     // nodes whose distance is final
	pq      nodePQ           // min-heap of tentative distances
}

// init seeds the heap with the source at distance zero.
func (r *runner) init() {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.res.Source, dist: 0})
}

// process repeatedly extracts the closest unsettled node and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty.
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Stale entry: node already settled or a better distance is known.
		if r.settled[u] || d > r.res.Dist[u] {
			continue
		}
		// Everything left in the heap is at least as far; stop exploring.
		if d > r.options.MaxDistance {
			break
		}

		r.settled[u] = true
		r.relax(u, d)
	}
}

// relax examines each record leaving u and improves neighbor distances.
// Edges with weight ≥ InfEdgeThreshold and candidates beyond MaxDistance are skipped.
func (r *runner) relax(u int, du int64) {
	for _, e := range r.snap.Neighbors(u) {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		cand := shortest.AddSat(du, e.Weight)
		if cand > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor found.
		if cand >= r.res.Dist[e.To] {
			continue
		}

		r.res.Dist[e.To] = cand
		r.res.Prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: cand})
	}
}

// nodeItem is a (node, tentative distance) heap entry.
type nodeItem struct {
	id   int   // node key
	dist int64 // tentative distance from source at push time
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
