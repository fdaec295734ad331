// Package netctrl is the computational core of a structural-controllability
// analyzer for directed complex networks.
//
// Given a directed graph, the core computes:
//
//   - a minimum set of driver nodes sufficient to steer the network under
//     one of two dynamical models (package liu or package sbd);
//   - the control paths that route control signals from drivers through
//     the rest of the network (package ctrlpath, backed by package
//     matching);
//   - a per-edge classification characterizing how each edge's removal
//     would change the number of drivers required
//     (liu.Solver.ClassifyEdges, sbd.Solver.ClassifyEdges).
//
// Subpackages, leaves first:
//
//	graph/      in-memory directed multigraph + components, bipartite
//	            matching, and random-graph generators the solvers consume
//	matching/   one-to-many directed matching
//	ctrlpath/   stem/bud/open-walk/closed-walk control-path model
//	liu/        bipartite-matching-based solver + Regin-style classifier
//	sbd/        degree-imbalance solver + degree-diff classifier
//	nullmodel/  repeats a solver across random-graph ensembles
//	analysis/   orchestrator dispatching to drivers/control_paths/
//	            statistics/significance/graph outputs
//
// The command-line front-end, graph file I/O, and the vertex-set
// mini-language that select which nodes to target are out of scope: this
// module consumes an already-built graph.Graph and returns in-memory
// results for an external caller to render or serialize.
package netctrl
