// File: methods_edges.go
// Role: Edge mutation & adjacency queries.
//
// Invariants:
//   - Neighbour relation is symmetric: after AddEdge(a, b), a ∈ neighbours(b)
//     and b ∈ neighbours(a).
//   - No self-loops; both endpoints must already exist.
//
// Determinism:
//   - Neighbors() returns items sorted lexicographically ascending.
package core

import "fmt"

// AddEdge adds an undirected, unit-cost edge between item1 and item2 by
// inserting each endpoint into the other's neighbour set. Adding an edge
// that already exists is a no-op (neighbour sets are sets).
//
// Returns ErrSelfLoop when item1 == item2, and ErrVertexNotFound
// (wrapped with the offending item) when either endpoint is absent.
// Complexity: O(1)
func (g *Graph) AddEdge(item1, item2 string) error {
	if item1 == item2 {
		return ErrSelfLoop
	}

	v1, ok := g.vertices[item1]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, item1)
	}
	v2, ok := g.vertices[item2]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, item2)
	}

	v1.neighbours[item2] = struct{}{}
	v2.neighbours[item1] = struct{}{}

	return nil
}

// Adjacent reports whether item1 and item2 are directly connected.
// Returns false, not an error, if either item is absent from the graph.
// Complexity: O(1)
func (g *Graph) Adjacent(item1, item2 string) bool {
	if _, ok := g.vertices[item1]; !ok {
		return false
	}
	v2, ok := g.vertices[item2]
	if !ok {
		return false
	}
	_, ok = v2.neighbours[item1]

	return ok
}

// Neighbors returns the items adjacent to item in lexicographic
// ascending order. The second return value is false when item is
// unknown; an isolated vertex yields an empty, non-nil slice.
// Complexity: O(d log d) where d is the vertex degree.
func (g *Graph) Neighbors(item string) ([]string, bool) {
	v, ok := g.vertices[item]
	if !ok {
		return nil, false
	}

	return v.neighbourItems(), true
}

// EdgeCount returns the total number of edges in the graph: the sum of
// all neighbour-set sizes halved, since each edge is recorded from both
// endpoints.
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	total := 0
	var v *Vertex
	for _, v = range g.vertices {
		total += len(v.neighbours)
	}

	return total / 2
}
