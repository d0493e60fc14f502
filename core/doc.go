// Package core provides the thread-safe in-memory graph store used by the
// shortest-path engines of lvpath.
//
// The Graph G = (V,E) is undirected and integer-keyed:
//
//   - Every logical edge {u,v} with weight w is stored as two records,
//     (u,v,w) in u's adjacency list and (v,u,w) in v's adjacency list, so
//     enumeration from either endpoint is O(deg).
//   - Nodes come into existence the first time they appear as an endpoint of
//     AddEdge. They are never removed; dropping all of a node's edges leaves
//     the node present with an empty adjacency list.
//   - Parallel edges are allowed. AddEdge performs no uniqueness check.
//   - Weights are int64 and are accepted as-is, negative values included.
//
// Iteration order:
//
//	Nodes are enumerated in first-insertion order; edges of a node in the
//	order they were appended. Vertices(), Edges() and Snapshot() all follow
//	this "graph iteration order", which also drives edge-list export.
//
// Mutation API:
//
//	AddEdge(u, v int, w int64)          // O(1) amortized, appends both records
//	RemoveEdge(u, v int)                // O(deg(u)+deg(v)), removes ALL u↔v records
//	UpdateEdgeWeight(u, v int, w int64) // O(deg(u)+deg(v)), first match per side
//
// None of the mutations return errors: removing or updating an absent edge is
// a silent no-op.
//
// Duplicate-edge caveat:
//
//	With parallel u↔v edges, UpdateEdgeWeight touches only the first matching
//	record on each side. The remaining duplicates keep their old weights and can
//	therefore differ from each other after the update. CheckMirror still holds
//	because each side is updated symmetrically; the divergence is between
//	parallel copies, not between mirrors.
//
// Concurrency:
//
//	All methods are safe for concurrent use. Mutations take the write lock and
//	queries the read lock. Engines read through Snapshot(), an immutable copy
//	taken under a single read lock, so a run can never observe a graph in the
//	middle of a mutation.
package core
