// Package bellmanford_test provides benchmarks for the BellmanFord engine.
package bellmanford_test

import (
	"testing"

	"github.com/katalvlaran/lvpath/bellmanford"
	"github.com/katalvlaran/lvpath/core"
)

// BenchmarkBellmanFord_Ring measures the worst case for early exit: a long ring
// visited against insertion order.
func BenchmarkBellmanFord_Ring(b *testing.B) {
	const n = 300
	g := core.NewGraph(core.WithCapacity(n))
	for i := n - 1; i > 0; i-- {
		g.AddEdge(i, i-1, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bellmanford.BellmanFord(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
