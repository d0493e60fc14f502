// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Clone takes the source read lock; Clear takes the write lock.

package core

// Clone returns a deep copy of the Graph: node order and every adjacency list.
// Later mutations of either graph do not affect the other.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.order)))
	clone.order = append(clone.order, g.order...)
	for key, list := range g.adjacency {
		if list == nil {
			clone.adjacency[key] = nil
			continue
		}
		cp := make([]Edge, len(list))
		copy(cp, list)
		clone.adjacency[key] = cp
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear removes all nodes and edges.
// Complexity: O(1) (old maps are left to the garbage collector).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.order = nil
	g.adjacency = make(map[int][]Edge)
	g.edgeCount = 0
}
