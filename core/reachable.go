// File: reachable.go
// Role: Unbounded-distance connectivity under the call-depth ceiling.
//
// Algorithm: classic marked depth-first search. One mutable visited set
// is shared across the entire query, so every vertex is explored at most
// once. Contrast with distance.go, which copies its visited set per
// branch; the two are genuinely different algorithms and must stay
// separate.
package core

// connWalker carries the state of one Connected query: the target item
// and the single visited set shared by the whole recursion.
type connWalker struct {
	graph   *Graph
	target  string
	visited map[string]struct{}
}

// Connected reports whether item1 and item2 are connected by some path
// in this graph, searching to a call depth of at most MaxTraversalDepth.
// For networks of diameter ≤ MaxTraversalDepth this matches true
// reachability; beyond the ceiling a branch reports unreachable.
//
// Returns false, not an error, if either item is absent. A fresh visited
// set is allocated per query.
// Complexity: O(V + E) bounded by the depth ceiling.
func (g *Graph) Connected(item1, item2 string) bool {
	v, ok := g.vertices[item1]
	if !ok {
		return false
	}
	if _, ok = g.vertices[item2]; !ok {
		return false
	}

	w := &connWalker{graph: g, target: item2, visited: make(map[string]struct{})}

	return w.search(v, 0)
}

// search reports whether the target is reachable from v without using
// any vertex in w.visited. The depth guard fires before the target test,
// so a match sitting beyond the ceiling is still reported unreachable.
//
// Precondition: v is not in w.visited (a self-revisit is a caller error).
// Side effect: marks every explored vertex in w.visited.
func (w *connWalker) search(v *Vertex, depth int) bool {
	if depth > MaxTraversalDepth {
		return false
	}
	if v.Item == w.target {
		return true
	}

	w.visited[v.Item] = struct{}{}
	var item string
	for _, item = range v.neighbourItems() {
		if _, seen := w.visited[item]; seen {
			continue
		}
		u, ok := w.graph.vertices[item]
		if !ok {
			continue
		}
		if w.search(u, depth+1) {
			return true
		}
	}

	return false
}
