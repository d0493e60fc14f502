// File: methods_edges.go
// Role: Mutation API (AddEdge/RemoveEdge/UpdateEdgeWeight) and edge queries.
// Determinism:
//   - Edges() returns records in graph iteration order (node insertion order,
//     then adjacency order).
// Concurrency:
//   - Mutations under the write lock; both mirror records change under one lock.
//   - Queries under the read lock.

package core

// AddEdge appends (u,v,w) to u's adjacency list and (v,u,w) to v's, creating
// either node on first sight.
//
// No uniqueness check is made: calling AddEdge twice for the same pair creates
// two parallel edges, and both take part in relaxation. A self-loop (u == v)
// stores two (u,u,w) records under u.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ensureVertex(g, u)
	ensureVertex(g, v)
	g.adjacency[u] = append(g.adjacency[u], Edge{From: u, To: v, Weight: w})
	g.adjacency[v] = append(g.adjacency[v], Edge{From: v, To: u, Weight: w})
	g.edgeCount += 2
}

// RemoveEdge removes every record in u's list whose destination is v and every
// record in v's list whose destination is u. Parallel edges are removed in bulk.
//
// Missing nodes or missing edges make this a silent no-op. Both nodes stay in
// the graph even when their adjacency lists become empty.
//
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(u, v int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	removeTo(g, u, v)
	if u != v {
		removeTo(g, v, u)
	}
}

// UpdateEdgeWeight sets the weight of the first record u→v in u's list and of the
// first record v→u in v's list to w.
//
// With parallel edges only the first match on each side changes, so duplicates
// may end up with different weights. Absent nodes or edges are a silent no-op.
//
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) UpdateEdgeWeight(u, v int, w int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	updateFirst(g, u, v, w)
	updateFirst(g, v, u, w)
}

// HasEdge reports whether at least one record u→v is stored.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.adjacency[u] {
		if e.To == v {
			return true
		}
	}

	return false
}

// Neighbors returns a copy of v's adjacency list, in insertion order.
// An unknown node yields nil.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	list := g.adjacency[v]
	if len(list) == 0 {
		return nil
	}
	out := make([]Edge, len(list))
	copy(out, list)

	return out
}

// Edges returns every stored record in graph iteration order. Each logical
// edge appears twice, once per direction.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, key := range g.order {
		out = append(out, g.adjacency[key]...)
	}

	return out
}

// EdgeCount returns the number of stored records (twice the number of logical edges).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// removeTo drops all records from→to. Caller must hold the write lock.
func removeTo(g *Graph, from, to int) {
	list, ok := g.adjacency[from]
	if !ok {
		return
	}
	kept := list[:0]
	for _, e := range list {
		if e.To == to {
			g.edgeCount--
			continue
		}
		kept = append(kept, e)
	}
	// Zero the tail so dropped records do not linger in the backing array.
	for i := len(kept); i < len(list); i++ {
		list[i] = Edge{}
	}
	g.adjacency[from] = kept
}

// updateFirst rewrites the weight of the first record from→to. Caller must hold the write lock.
func updateFirst(g *Graph, from, to int, w int64) {
	list := g.adjacency[from]
	for i := range list {
		if list[i].To == to {
			list[i].Weight = w
			return
		}
	}
}
