// File: view.go
// Role: Read-only views over a Graph (Snapshot) and the mirror-invariant check.
// Determinism:
//   - Snapshot preserves graph iteration order.
// Concurrency:
//   - A Snapshot is built under one read lock and never changes afterwards.

package core

// Snapshot is an immutable, point-in-time copy of a Graph's topology.
//
// Engines run against a Snapshot so that concurrent mutations of the source
// Graph cannot be observed halfway. Slices returned by its methods are shared
// with the Snapshot and must be treated as read-only.
type Snapshot struct {
	order     []int
	adjacency map[int][]Edge
	edges     []Edge
}

// Snapshot copies the current topology under a single read lock.
// Complexity: O(V + E).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		order:     make([]int, len(g.order)),
		adjacency: make(map[int][]Edge, len(g.order)),
		edges:     make([]Edge, 0, g.edgeCount),
	}
	copy(s.order, g.order)
	for _, key := range g.order {
		start := len(s.edges)
		s.edges = append(s.edges, g.adjacency[key]...)
		// Adjacency lists are windows into the flat edge slice.
		s.adjacency[key] = s.edges[start:len(s.edges):len(s.edges)]
	}

	return s
}

// Vertices returns node keys in first-insertion order. Read-only.
func (s *Snapshot) Vertices() []int { return s.order }

// VertexCount returns the number of distinct node keys.
func (s *Snapshot) VertexCount() int { return len(s.order) }

// HasVertex reports whether key is present in the snapshot.
func (s *Snapshot) HasVertex(key int) bool {
	_, ok := s.adjacency[key]

	return ok
}

// Neighbors returns key's records in insertion order. Read-only; nil for unknown keys.
func (s *Snapshot) Neighbors(key int) []Edge { return s.adjacency[key] }

// Edges returns every record in graph iteration order. Read-only.
func (s *Snapshot) Edges() []Edge { return s.edges }

// mirrorKey identifies a record by endpoints and weight.
type mirrorKey struct {
	from, to int
	weight   int64
}

// CheckMirror verifies the bidirectional invariant: for every stored record
// (u,v,w) there must be a matching (v,u,w) record, counted with multiplicity.
// It returns the records lacking a mirror, in graph iteration order; an empty
// result means the invariant holds.
//
// Complexity: O(V + E).
func CheckMirror(g *Graph) []Edge {
	s := g.Snapshot()

	counts := make(map[mirrorKey]int, len(s.edges))
	for _, e := range s.edges {
		counts[mirrorKey{e.From, e.To, e.Weight}]++
	}

	var broken []Edge
	for _, e := range s.edges {
		if counts[mirrorKey{e.To, e.From, e.Weight}] != counts[mirrorKey{e.From, e.To, e.Weight}] {
			broken = append(broken, e)
		}
	}

	return broken
}
