// Package roadgraph is an in-memory model of an undirected road network:
// labeled vertices, unit-cost edges, and bounded reachability queries
// between two labeled points.
//
// 🚀 What is roadgraph?
//
//	A small, deterministic library that brings together:
//		• Core primitives: item-keyed vertices, symmetric unit-cost edges
//		• Reachability: depth-capped connectivity between two items
//		• Bounded distance: "is B within d hops of A?"
//		• Path enumeration: simple paths with a similarity-based prune,
//		  from which a best-effort shortest path is derived
//		• Adapters: SNAP roadNet edge-list ingestion and Graphviz DOT export
//
// ✨ Why choose roadgraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – neighbours are always explored in lexicographic
//     order, so every query is reproducible
//   - Pure Go – no cgo, no hidden deps
//   - Honest about its limits – ShortestPath is shortest among the
//     heuristically retained paths, not a global guarantee
//
// Under the hood, everything is organized under three subpackages:
//
//	core/     — Graph & Vertex types, mutation and all traversal queries
//	edgelist/ — tab-separated roadNet file ingestion (roadNet-CA, roadNet-TX, …)
//	viz/      — bounded-neighbourhood snapshots rendered as Graphviz DOT
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents four intersections joined by four road segments.
//
// Dive into core for the query semantics, in particular the depth-20
// traversal ceiling and the path-pruning heuristic that ShortestPath
// builds on.
//
//	go get github.com/katalvlaran/roadgraph/core
package roadgraph
