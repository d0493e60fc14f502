// Package bellmanford implements the iterative edge-relaxation shortest-path
// engine with negative-cycle detection.
//
// Algorithm:
//
//  1. Initialize every node to Infinity and the source to 0.
//  2. Let N be the number of distinct node keys. Perform N-1 passes over every
//     stored edge record (u,v,w) in graph iteration order, relaxing v when
//     dist[u] is finite and dist[u]+w < dist[v].
//  3. Perform one more pass with the same check. Any successful relaxation means
//     a negative-weight cycle is reachable from the source: the run fails with
//     ErrNegativeCycle and the partial distances are discarded.
//
// Bidirectional caveat:
//
//	Every logical edge is stored twice with the same weight. A single negative
//	edge u—v therefore forms the 2-cycle u→v→u of negative total weight, and is
//	always reported once it is reachable. On this representation the engine
//	is only useful with non-negative weights, or with the cycle report treated
//	as an informative signal rather than an exceptional one. The representation
//	is left as-is on purpose; callers decide how to read the signal.
//
// Complexity:
//
//   - Time:  O(V · E) worst case; O(k · E) with early exit after k passes.
//   - Space: O(V + E) for the snapshot and the result maps.
package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/shortest"
)

// BellmanFord computes shortest distances from source to every node of g,
// supporting negative edge weights as long as no negative cycle is reachable.
//
// The source need not exist in g; it is then the only node at distance 0.
//
// Returns:
//
//   - *shortest.Result: final distances and predecessors, nil on error.
//   - err: ErrNilGraph, or ErrNegativeCycle wrapped with the first edge that
//     still relaxed in the detection pass.
func BellmanFord(g *core.Graph, source int, opts ...Option) (*shortest.Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}

	snap := g.Snapshot()
	edges := snap.Edges()
	res := shortest.New(source, snap.Vertices())

	// N-1 relaxation passes.
	for pass := 1; pass < snap.VertexCount(); pass++ {
		changed := false
		for _, e := range edges {
			if relax(res, e) {
				changed = true
			}
		}
		if !changed && cfg.EarlyExit {
			break
		}
	}

	// Detection pass: nothing may relax any more.
	for _, e := range edges {
		if canRelax(res, e) {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeCycle, e.From, e.To, e.Weight)
		}
	}

	return res, nil
}

// canRelax reports whether e improves the distance of its destination.
func canRelax(res *shortest.Result, e core.Edge) bool {
	du := res.Dist[e.From]
	if du == shortest.Infinity {
		return false
	}

	return shortest.AddSat(du, e.Weight) < res.Dist[e.To]
}

// relax applies e if it improves its destination and reports whether it did.
func relax(res *shortest.Result, e core.Edge) bool {
	if !canRelax(res, e) {
		return false
	}
	res.Dist[e.To] = shortest.AddSat(res.Dist[e.From], e.Weight)
	res.Prev[e.To] = e.From

	return true
}
