// Package app drives one shortest-path session: load an edge list, optionally
// export it, run the configured engines from the start node, apply the run
// file's mutations and run the engines again.
//
// The App owns an isolated logger and passes it down through the context, so
// library packages (edgelist) log into the same handler as the driver.
// A negative-weight cycle reported by bellmanford is a result, not an error:
// it is logged and recorded in the Report and the session continues.
package app
