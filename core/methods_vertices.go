// File: methods_vertices.go
// Role: Vertex lifecycle & vertex-level statistics.
//
// Determinism:
//   - Vertices() returns items sorted lexicographically ascending.
package core

import "sort"

// AddVertex inserts a new vertex with an empty neighbour set keyed by item.
//
// Contract: if item is already present, the existing vertex is silently
// replaced and its adjacency is lost from the new vertex's side; reverse
// entries in other vertices' neighbour sets are left behind. Guarding
// against duplicate insertion is the caller's responsibility. This
// replacement behavior is a documented, preserved contract - do not
// "fix" it by making the call idempotent.
//
// Returns ErrEmptyVertexID if item == "".
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(item string) error {
	if item == "" {
		return ErrEmptyVertexID
	}

	g.vertices[item] = &Vertex{Item: item, neighbours: make(map[string]struct{})}

	return nil
}

// HasVertex reports whether the item exists in the graph (empty item ⇒ false).
// Complexity: O(1)
func (g *Graph) HasVertex(item string) bool {
	if item == "" {
		return false
	}
	_, ok := g.vertices[item]

	return ok
}

// Vertices returns all items in lexicographic ascending order.
//
// Stable enumeration surface: rely on it for reproducible outputs and
// test assertions.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	items := make([]string, 0, len(g.vertices))
	var item string
	for item = range g.vertices {
		items = append(items, item)
	}

	sort.Strings(items)

	return items
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// MaxDegree returns the maximum neighbour-set size across all vertices.
//
// Precondition: the graph has at least one vertex; on an empty graph
// MaxDegree returns ErrEmptyGraph.
// Complexity: O(V)
func (g *Graph) MaxDegree() (int, error) {
	if len(g.vertices) == 0 {
		return 0, ErrEmptyGraph
	}

	maxDeg := 0
	var v *Vertex
	for _, v = range g.vertices {
		if len(v.neighbours) > maxDeg {
			maxDeg = len(v.neighbours)
		}
	}

	return maxDeg, nil
}
