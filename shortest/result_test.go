// Package shortest_test verifies the Distance Result helpers.
package shortest_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/shortest"
)

// sample returns the result of a run from 1 over {(1,2,4),(2,3,1)} plus an isolated node 7.
func sample() *shortest.Result {
	r := shortest.New(1, []int{1, 2, 3, 7})
	r.Dist[2], r.Prev[2] = 4, 1
	r.Dist[3], r.Prev[3] = 5, 2

	return r
}

func TestNew_InitializesInfinityAndSource(t *testing.T) {
	r := shortest.New(42, []int{1, 2})

	want := map[int]int64{1: shortest.Infinity, 2: shortest.Infinity, 42: 0}
	if diff := cmp.Diff(want, r.Dist); diff != "" {
		t.Fatalf("Dist mismatch (-want +got):\n%s", diff)
	}
	require.Empty(t, r.Prev)
	require.Equal(t, 42, r.Source)
}

func TestResult_DistanceAndPredecessor(t *testing.T) {
	r := sample()

	d, ok := r.Distance(3)
	require.True(t, ok)
	require.Equal(t, int64(5), d)

	d, ok = r.Distance(7)
	require.False(t, ok)
	require.Equal(t, shortest.Infinity, d)

	_, ok = r.Distance(99)
	require.False(t, ok)

	p, ok := r.Predecessor(3)
	require.True(t, ok)
	require.Equal(t, 2, p)

	_, ok = r.Predecessor(1)
	require.False(t, ok, "source has no predecessor")
	_, ok = r.Predecessor(7)
	require.False(t, ok, "unreached node has no predecessor")
}

func TestResult_PathTo(t *testing.T) {
	r := sample()

	path, err := r.PathTo(3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, path)

	path, err = r.PathTo(1)
	require.NoError(t, err)
	require.Equal(t, []int{1}, path)

	_, err = r.PathTo(7)
	require.ErrorIs(t, err, shortest.ErrUnreachable)
	_, err = r.PathTo(99)
	require.ErrorIs(t, err, shortest.ErrUnreachable)
}

func TestResult_PathToBrokenChain(t *testing.T) {
	r := sample()
	delete(r.Prev, 2)

	_, err := r.PathTo(3)
	require.ErrorIs(t, err, shortest.ErrUnreachable)
}

func TestResult_NodesAndString(t *testing.T) {
	r := sample()

	require.Equal(t, []int{1, 2, 3, 7}, r.Nodes())
	require.Equal(t, "{1:0 2:4 3:5 7:inf}", r.String())
}

func TestEqual(t *testing.T) {
	a, b := sample(), sample()
	require.True(t, shortest.Equal(a, b))
	require.True(t, shortest.DistancesEqual(a, b))

	b.Prev[3] = 1
	require.False(t, shortest.Equal(a, b))
	require.True(t, shortest.DistancesEqual(a, b), "predecessors are ignored")

	b.Dist[7] = 9
	require.False(t, shortest.DistancesEqual(a, b))

	require.True(t, shortest.Equal(nil, nil))
	require.False(t, shortest.DistancesEqual(a, nil))
}

func TestAddSat(t *testing.T) {
	require.Equal(t, int64(7), shortest.AddSat(3, 4))
	require.Equal(t, int64(-1), shortest.AddSat(3, -4))
	require.Equal(t, shortest.Infinity-1, shortest.AddSat(shortest.Infinity-2, 5))
	require.Equal(t, int64(math.MinInt64), shortest.AddSat(math.MinInt64+1, -5))
}
