// Package shortest defines the Distance Result shared by the lvpath
// shortest-path engines.
//
// A Result is a plain value: it is freshly built by every engine run, fully
// overwritten on each invocation, and holds no reference back into the graph
// it was computed from.
//
//   - Dist covers every node key of the graph at run time, plus the source.
//     Unreached nodes hold Infinity.
//   - Prev holds an entry only for reached nodes other than the source. A
//     missing entry means "no predecessor": the node is the source or unreached.
package shortest

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Infinity is the distance recorded for unreached nodes.
const Infinity int64 = math.MaxInt64

// ErrUnreachable indicates PathTo was asked for a node with no path from the source.
var ErrUnreachable = errors.New("shortest: node unreachable from source")

// Result is the per-node output of one engine run.
type Result struct {
	// Source is the start node of the run.
	Source int

	// Dist maps node key → shortest known distance, Infinity if unreached.
	Dist map[int]int64

	// Prev maps node key → predecessor on one shortest path.
	Prev map[int]int
}

// New returns a Result with every key at Infinity, no predecessors, and the
// source at distance zero. The source is inserted even if it is not in keys.
// Complexity: O(len(keys)).
func New(source int, keys []int) *Result {
	r := &Result{
		Source: source,
		Dist:   make(map[int]int64, len(keys)+1),
		Prev:   make(map[int]int, len(keys)),
	}
	for _, k := range keys {
		r.Dist[k] = Infinity
	}
	r.Dist[source] = 0

	return r
}

// Distance returns v's distance and whether v is reachable.
// Unknown keys report (Infinity, false).
func (r *Result) Distance(v int) (int64, bool) {
	d, ok := r.Dist[v]
	if !ok {
		return Infinity, false
	}

	return d, d != Infinity
}

// Predecessor returns v's predecessor, if it has one.
func (r *Result) Predecessor(v int) (int, bool) {
	p, ok := r.Prev[v]

	return p, ok
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v int) bool {
	_, ok := r.Distance(v)

	return ok
}

// Nodes returns every key covered by the result, sorted ascending.
func (r *Result) Nodes() []int {
	out := make([]int, 0, len(r.Dist))
	for k := range r.Dist {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

// PathTo reconstructs the node sequence Source → … → v by walking predecessors.
//
// Errors:
//   - ErrUnreachable if v is unknown or has distance Infinity.
//
// Complexity: O(path length).
func (r *Result) PathTo(v int) ([]int, error) {
	if !r.Reachable(v) {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, v)
	}

	path := []int{v}
	cur := v
	// A well-formed predecessor chain is acyclic and no longer than len(Dist).
	for cur != r.Source {
		p, ok := r.Prev[cur]
		if !ok || len(path) > len(r.Dist) {
			return nil, fmt.Errorf("%w: broken predecessor chain at %d", ErrUnreachable, cur)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// String renders distances sorted by key, e.g. "{1:0 2:4 3:inf}".
func (r *Result) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range r.Nodes() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(k))
		b.WriteByte(':')
		if d := r.Dist[k]; d == Infinity {
			b.WriteString("inf")
		} else {
			b.WriteString(strconv.FormatInt(d, 10))
		}
	}
	b.WriteByte('}')

	return b.String()
}

// DistancesEqual reports whether a and b cover the same keys with the same
// distances. Predecessors are ignored: equal-cost paths may legitimately differ.
func DistancesEqual(a, b *Result) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Dist) != len(b.Dist) {
		return false
	}
	for k, d := range a.Dist {
		if od, ok := b.Dist[k]; !ok || od != d {
			return false
		}
	}

	return true
}

// Equal reports whether a and b agree on source, distances and predecessors.
func Equal(a, b *Result) bool {
	if !DistancesEqual(a, b) {
		return false
	}
	if a == nil {
		return true
	}
	if a.Source != b.Source || len(a.Prev) != len(b.Prev) {
		return false
	}
	for k, p := range a.Prev {
		if op, ok := b.Prev[k]; !ok || op != p {
			return false
		}
	}

	return true
}

// AddSat returns d+w, clamped so that the sum never wraps around int64.
// Finite sums that would reach Infinity are clamped to Infinity-1 so they stay
// distinguishable from "unreached"; negative overflow clamps to math.MinInt64.
func AddSat(d, w int64) int64 {
	if w > 0 && d > Infinity-1-w {
		return Infinity - 1
	}
	if w < 0 && d < math.MinInt64-w {
		return math.MinInt64
	}

	return d + w
}
