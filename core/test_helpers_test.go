// Package core_test contains fixtures and assertion helpers for lvpath/core.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
)

// Common node keys used across core tests.
const (
	Node1 = 1
	Node2 = 2
	Node3 = 3
	Node4 = 4
	Node9 = 9
)

// Common weights used across core tests.
const (
	Weight1   = 1
	Weight4   = 4
	Weight7   = 7
	WeightNeg = -10
)

// Common concurrency sizes.
const (
	NWriters = 50
	NReaders = 50
	NRounds  = 100
)

// buildPath returns the graph {(1,2,4), (2,3,1)} used throughout the scenarios.
func buildPath() *core.Graph {
	g := core.NewGraph()
	g.AddEdge(Node1, Node2, Weight4)
	g.AddEdge(Node2, Node3, Weight1)

	return g
}

// requireMirror fails the test if any stored record lacks its mirror.
func requireMirror(t *testing.T, g *core.Graph) {
	t.Helper()
	broken := core.CheckMirror(g)
	require.Empty(t, broken, "records without a mirror: %v", broken)
}
