// File: methods_vertices.go
// Role: Node queries. Nodes are created implicitly by AddEdge and never deleted.
// Determinism:
//   - Vertices() returns keys in first-insertion order.
// Concurrency:
//   - Read lock only.

package core

// HasVertex reports whether key has ever been an endpoint of AddEdge.
// Complexity: O(1).
func (g *Graph) HasVertex(key int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[key]

	return ok
}

// Vertices returns all node keys in first-insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of distinct node keys.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Degree returns the number of records stored under key. A self-loop counts
// twice, matching its two stored records. Unknown keys have degree 0.
// Complexity: O(1).
func (g *Graph) Degree(key int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[key])
}
