// File: distance.go
// Role: Bounded-distance connectivity ("is item2 within d hops of item1?").
//
// Algorithm: exponential branching search bounded by the remaining hop
// budget. The visited set is extended by functional copy per branch, so
// sibling branches never interfere: a vertex consumed on one route stays
// available to an alternative route. This is deliberately NOT the shared
// marked-DFS of reachable.go; on graphs with multiple paths the two give
// subtly different answers and must not be unified.
package core

// ConnectedDistance reports whether item1 and item2 are connected by a
// path of length ≤ d edges.
//
// Returns false when d > MaxTraversalDepth (external hard cap, checked
// before anything else) or when either item is absent from the graph.
// ConnectedDistance(a, a, 0) is true for any present item a.
// Complexity: O(b^d) worst case, b the branching factor.
func (g *Graph) ConnectedDistance(item1, item2 string, d int) bool {
	if d > MaxTraversalDepth {
		return false
	}

	v, ok := g.vertices[item1]
	if !ok {
		return false
	}
	if _, ok = g.vertices[item2]; !ok {
		return false
	}

	return g.withinDistance(v, item2, make(map[string]struct{}), d)
}

// withinDistance reports whether the target is reachable from v within a
// remaining budget of d edges, without using any vertex in visited.
//
// visited is never mutated: each call derives an augmented copy for its
// own subtree, which is what keeps sibling branches independent.
// Precondition: v is not in visited.
func (g *Graph) withinDistance(v *Vertex, target string, visited map[string]struct{}, d int) bool {
	if v.Item == target && d >= 0 {
		return true
	}
	if d < 0 {
		return false
	}

	// Functional extension: visited ∪ {v}, fresh map per branch.
	branch := make(map[string]struct{}, len(visited)+1)
	var item string
	for item = range visited {
		branch[item] = struct{}{}
	}
	branch[v.Item] = struct{}{}

	for _, item = range v.neighbourItems() {
		if _, seen := branch[item]; seen {
			continue
		}
		u, ok := g.vertices[item]
		if !ok {
			continue
		}
		if g.withinDistance(u, target, branch, d-1) {
			return true
		}
	}

	return false
}
