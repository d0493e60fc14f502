// Package lvpath computes single-source shortest paths over weighted,
// undirected graphs, and re-runs them after topology changes.
//
// 🚀 What is in the box?
//
//	• core/        — thread-safe Graph: AddEdge, RemoveEdge, UpdateEdgeWeight, Snapshot
//	• dijkstra/    — min-heap engine for non-negative weights
//	• bellmanford/ — edge-relaxation engine with negative-cycle detection
//	• shortest/    — the shared distance/predecessor Result type
//	• edgelist/    — plain or gzip "source destination" loader and exporter
//	• cmd/lvpath   — CLI driver (run files in HCL, one-shot paths, export)
//
// Every edge is stored twice, once per direction, so an undirected edge u–v
// shows up in both Neighbors(u) and Neighbors(v). Parallel edges are kept.
//
// Quick example:
//
//	g := core.NewGraph()
//	g.AddEdge(1, 2, 4)
//	g.AddEdge(2, 3, 1)
//	res, _ := dijkstra.Dijkstra(g, 1)
//	fmt.Println(res) // {1:0 2:4 3:5}
//
//	go get github.com/katalvlaran/lvpath
package lvpath
