// Package core_test verifies the Graph Store and Mutation API contracts.
package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
)

// TestGraph_AddEdgeMirrors checks that AddEdge stores both directions and creates both nodes.
func TestGraph_AddEdgeMirrors(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(Node1, Node2, Weight4)

	require.True(t, g.HasVertex(Node1))
	require.True(t, g.HasVertex(Node2))
	require.Equal(t, []core.Edge{{From: Node1, To: Node2, Weight: Weight4}}, g.Neighbors(Node1))
	require.Equal(t, []core.Edge{{From: Node2, To: Node1, Weight: Weight4}}, g.Neighbors(Node2))
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, 2, g.VertexCount())
	requireMirror(t, g)
}

// TestGraph_VerticesInsertionOrder pins graph iteration order to first insertion.
func TestGraph_VerticesInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(Node9, Node3, Weight1)
	g.AddEdge(Node1, Node9, Weight1)
	g.AddEdge(Node3, Node4, Weight1)

	require.Equal(t, []int{Node9, Node3, Node1, Node4}, g.Vertices())

	want := []core.Edge{
		{From: Node9, To: Node3, Weight: Weight1},
		{From: Node9, To: Node1, Weight: Weight1},
		{From: Node3, To: Node9, Weight: Weight1},
		{From: Node3, To: Node4, Weight: Weight1},
		{From: Node1, To: Node9, Weight: Weight1},
		{From: Node4, To: Node3, Weight: Weight1},
	}
	require.Equal(t, want, g.Edges())
}

// TestGraph_ParallelEdges checks that duplicates are kept and removed in bulk.
func TestGraph_ParallelEdges(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(Node1, Node2, Weight4)
	g.AddEdge(Node1, Node2, Weight7)

	require.Equal(t, 2, g.Degree(Node1))
	require.Equal(t, 4, g.EdgeCount())

	g.RemoveEdge(Node2, Node1)
	require.False(t, g.HasEdge(Node1, Node2))
	require.False(t, g.HasEdge(Node2, Node1))
	require.Equal(t, 0, g.EdgeCount())

	// Both nodes survive with empty adjacency lists.
	require.True(t, g.HasVertex(Node1))
	require.True(t, g.HasVertex(Node2))
	require.Nil(t, g.Neighbors(Node1))
}

// TestGraph_RemoveEdgeKeepsOthers checks that only u↔v records are dropped.
func TestGraph_RemoveEdgeKeepsOthers(t *testing.T) {
	g := buildPath()
	g.AddEdge(Node1, Node3, Weight7)

	g.RemoveEdge(Node2, Node3)

	require.True(t, g.HasEdge(Node1, Node2))
	require.True(t, g.HasEdge(Node1, Node3))
	require.False(t, g.HasEdge(Node2, Node3))
	require.Equal(t, []core.Edge{{From: Node2, To: Node1, Weight: Weight4}}, g.Neighbors(Node2))
	requireMirror(t, g)
}

// TestGraph_RemoveEdgeNoop checks that absent nodes and edges are silently ignored.
func TestGraph_RemoveEdgeNoop(t *testing.T) {
	g := buildPath()
	before := g.Edges()

	g.RemoveEdge(Node4, Node9) // neither node exists
	g.RemoveEdge(Node1, Node9) // only one exists
	g.RemoveEdge(Node1, Node3) // both exist, no edge

	require.Equal(t, before, g.Edges())
	require.False(t, g.HasVertex(Node9))
}

// TestGraph_UpdateEdgeWeight checks that both sides change.
func TestGraph_UpdateEdgeWeight(t *testing.T) {
	g := buildPath()
	g.UpdateEdgeWeight(Node2, Node1, Weight7)

	require.Equal(t, []core.Edge{{From: Node1, To: Node2, Weight: Weight7}}, g.Neighbors(Node1))
	require.Equal(t, core.Edge{From: Node2, To: Node1, Weight: Weight7}, g.Neighbors(Node2)[0])
	requireMirror(t, g)

	// Absent edge: no-op, no new nodes.
	g.UpdateEdgeWeight(Node1, Node9, Weight1)
	require.False(t, g.HasVertex(Node9))
}

// TestGraph_UpdateEdgeWeightFirstMatchOnly pins the duplicate-edge caveat:
// only the first parallel record per side is rewritten.
func TestGraph_UpdateEdgeWeightFirstMatchOnly(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(Node1, Node2, Weight1)
	g.AddEdge(Node1, Node2, Weight1)

	g.UpdateEdgeWeight(Node1, Node2, Weight7)

	require.Equal(t, []core.Edge{
		{From: Node1, To: Node2, Weight: Weight7},
		{From: Node1, To: Node2, Weight: Weight1},
	}, g.Neighbors(Node1))
	require.Equal(t, []core.Edge{
		{From: Node2, To: Node1, Weight: Weight7},
		{From: Node2, To: Node1, Weight: Weight1},
	}, g.Neighbors(Node2))
	requireMirror(t, g)
}

// TestGraph_SelfLoop checks the two-record representation of a loop.
func TestGraph_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(Node3, Node3, Weight4)

	require.Equal(t, 1, g.VertexCount())
	require.Equal(t, 2, g.Degree(Node3))
	requireMirror(t, g)

	g.RemoveEdge(Node3, Node3)
	require.Equal(t, 0, g.EdgeCount())
	require.True(t, g.HasVertex(Node3))
}

// TestGraph_CloneIsIndependent checks deep-copy semantics.
func TestGraph_CloneIsIndependent(t *testing.T) {
	g := buildPath()
	c := g.Clone()

	g.RemoveEdge(Node1, Node2)
	c.UpdateEdgeWeight(Node2, Node3, Weight7)

	require.True(t, c.HasEdge(Node1, Node2))
	require.Equal(t, int64(Weight1), g.Neighbors(Node3)[0].Weight)
	require.Equal(t, int64(Weight7), c.Neighbors(Node3)[0].Weight)
	require.Equal(t, g.Vertices(), c.Vertices())
}

// TestGraph_Clear checks that Clear drops everything and the graph stays usable.
func TestGraph_Clear(t *testing.T) {
	g := buildPath()
	g.Clear()

	require.Zero(t, g.VertexCount())
	require.Zero(t, g.EdgeCount())
	require.Empty(t, g.Vertices())

	g.AddEdge(Node4, Node9, Weight1)
	require.Equal(t, []int{Node4, Node9}, g.Vertices())
}

// TestSnapshot_FrozenAgainstMutation checks that a Snapshot does not follow later mutations.
func TestSnapshot_FrozenAgainstMutation(t *testing.T) {
	g := buildPath()
	s := g.Snapshot()

	g.AddEdge(Node3, Node4, Weight1)
	g.RemoveEdge(Node1, Node2)

	require.Equal(t, []int{Node1, Node2, Node3}, s.Vertices())
	require.Equal(t, 3, s.VertexCount())
	require.False(t, s.HasVertex(Node4))
	require.Len(t, s.Edges(), 4)
	require.Equal(t, []core.Edge{{From: Node1, To: Node2, Weight: Weight4}}, s.Neighbors(Node1))
	require.Nil(t, s.Neighbors(Node9))
}

// TestCheckMirror_RandomMutations drives a random mutation sequence and checks
// the mirror invariant after every step.
func TestCheckMirror_RandomMutations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := core.NewGraph()
	const nodes = 8

	for step := 0; step < 500; step++ {
		u, v := rng.Intn(nodes), rng.Intn(nodes)
		switch rng.Intn(3) {
		case 0:
			g.AddEdge(u, v, int64(rng.Intn(20)-5))
		case 1:
			g.RemoveEdge(u, v)
		default:
			g.UpdateEdgeWeight(u, v, int64(rng.Intn(20)))
		}
		require.Empty(t, core.CheckMirror(g), "step %d broke the mirror invariant", step)
	}
}
