// Package core defines the Graph and Edge types and the NewGraph constructor.
//
// A single sync.RWMutex guards node order and adjacency together, so that a
// mutation of both mirror records is observed atomically by readers.
package core

import "sync"

// Edge is one directed half of a bidirectional connection.
//
// For every stored Edge{From: u, To: v, Weight: w} the Graph also stores
// Edge{From: v, To: u, Weight: w} under v.
type Edge struct {
	// From is the key of the node whose adjacency list holds this record.
	From int

	// To is the key of the neighbor reached through this record.
	To int

	// Weight is the cost of traversing the edge. Negative values are stored as-is.
	Weight int64
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node catalog for roughly n nodes.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n <= 0 {
			return
		}
		g.order = make([]int, 0, n)
		g.adjacency = make(map[int][]Edge, n)
	}
}

// Graph is the in-memory graph store.
//
// order lists node keys in first-insertion order; adjacency maps a key to its
// ordered edge records. Every key in order is present in adjacency and vice versa.
type Graph struct {
	mu sync.RWMutex // guards order, adjacency and edgeCount

	order     []int          // node keys, first-insertion order
	adjacency map[int][]Edge // node key → outgoing records
	edgeCount int            // number of stored records (2 per logical edge)
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (O(n) with WithCapacity(n)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[int][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// ensureVertex registers key if absent. Caller must hold g.mu for writing.
func ensureVertex(g *Graph, key int) {
	if _, ok := g.adjacency[key]; ok {
		return
	}
	g.adjacency[key] = nil
	g.order = append(g.order, key)
}
