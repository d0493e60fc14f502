// Package config defines the run configuration of the lvpath driver and
// decodes it from HCL run files.
//
// A run file names the edge list to load, where to export it, the start node,
// which engines to run, the log settings, and an ordered list of mutations to
// apply before the engines are run a second time:
//
//	input  = "${env.HOME}/data/facebook_combined.txt.gz"
//	output = "facebook_graph.edgelist"
//	start  = 0
//	engine = "both"
//
//	log {
//	  level  = "info"
//	  format = "text"
//	}
//
//	mutation "add" {
//	  from   = 1
//	  to     = 5
//	  weight = 10
//	}
//
//	mutation "remove" {
//	  from = 2
//	  to   = 4
//	}
//
// Environment variables are available to expressions as env.<NAME>.
package config
