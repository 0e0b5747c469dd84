// File: paths.go
// Role: Simple-path enumeration with a similarity prune, and the
// best-effort shortest path derived from it.
//
// The prune compares each candidate only against the most recently
// accepted path, using a position-wise match count and the threshold
// matching < len − len/3 (floor division). It suppresses near-duplicate
// paths that diverge only in a short suffix. It is an ad hoc heuristic,
// not a k-shortest-paths algorithm: ShortestPath is shortest among the
// retained set, and the prune may discard a true shortest path.
package core

// PathOption configures a ConnectedPath query.
type PathOption func(*pathConfig)

// pathConfig holds the resolved knobs of one ConnectedPath call.
type pathConfig struct {
	maxDepth int
}

// WithMaxDepth bounds enumerated paths to at most depth edges.
// Values above MaxTraversalDepth fall back to DefaultPathDepth,
// preserving the external hard cap.
func WithMaxDepth(depth int) PathOption {
	return func(c *pathConfig) {
		if depth <= MaxTraversalDepth {
			c.maxDepth = depth
		} else {
			c.maxDepth = DefaultPathDepth
		}
	}
}

// pathWalker carries the state of one ConnectedPath query: the parallel
// visited/path stacks mutated in place by the recursion, and the
// accumulated results. Only the outermost call, for which the path stack
// empties on return, yields results.
type pathWalker struct {
	graph    *Graph
	target   string
	maxDepth int

	visited []string // stack of items on the current route
	path    []string // stack of items forming the candidate path
	results [][]string
}

// ConnectedPath enumerates the distinct simple paths from item1 to item2
// as item sequences, subject to the depth cap (DefaultPathDepth unless
// overridden via WithMaxDepth) and the similarity prune described in the
// file header. Exploration backtracks unconditionally after each vertex,
// so multiple independent routes are discovered rather than stopping at
// the first.
//
// Returns nil if either item is unknown or no path was found. Results
// are deterministic: neighbours are explored in lexicographic order.
// Complexity: exponential in the depth cap, worst case.
func (g *Graph) ConnectedPath(item1, item2 string, opts ...PathOption) [][]string {
	v, ok := g.vertices[item1]
	if !ok {
		return nil
	}
	if _, ok = g.vertices[item2]; !ok {
		return nil
	}

	cfg := pathConfig{maxDepth: DefaultPathDepth}
	var opt PathOption
	for _, opt = range opts {
		opt(&cfg)
	}

	w := &pathWalker{graph: g, target: item2, maxDepth: cfg.maxDepth}
	w.enumerate(v, 0)

	return w.results
}

// ShortestPath returns the minimum-length path between item1 and item2
// among the paths retained by ConnectedPath at the default depth cap;
// the first such path wins on ties. Returns nil when no path was found
// or either item is unknown.
//
// Shortest-among-the-retained-set only: see the prune caveat above.
func (g *Graph) ShortestPath(item1, item2 string) []string {
	paths := g.ConnectedPath(item1, item2)
	if len(paths) == 0 {
		return nil
	}

	minPath := paths[0]
	var p []string
	for _, p = range paths {
		if len(p) < len(minPath) {
			minPath = p
		}
	}

	return minPath
}

// enumerate pushes v onto both stacks, records the current path when it
// reaches the target and survives the duplicate and similarity checks,
// recurses into unvisited neighbours while within the depth cap, and
// unconditionally pops both stacks on the way out.
//
// Precondition: v is not on the visited stack.
func (w *pathWalker) enumerate(v *Vertex, depth int) {
	w.visited = append(w.visited, v.Item)
	w.path = append(w.path, v.Item)

	if depth <= w.maxDepth {
		if v.Item == w.target && !w.recorded(w.path) {
			if len(w.results) == 0 || w.divergesEnough(w.path) {
				w.results = append(w.results, append([]string(nil), w.path...))
			}
		}
		var item string
		for _, item = range v.neighbourItems() {
			if w.onStack(item) {
				continue
			}
			u, ok := w.graph.vertices[item]
			if !ok {
				continue
			}
			w.enumerate(u, depth+1)
		}
	}

	w.path = w.path[:len(w.path)-1]
	w.visited = w.visited[:len(w.visited)-1]
}

// onStack reports whether item is on the visited stack of the current route.
func (w *pathWalker) onStack(item string) bool {
	var seen string
	for _, seen = range w.visited {
		if seen == item {
			return true
		}
	}

	return false
}

// recorded reports whether path is a literal duplicate of an already
// accepted result.
func (w *pathWalker) recorded(path []string) bool {
	var res []string
	for _, res = range w.results {
		if equalPath(res, path) {
			return true
		}
	}

	return false
}

// divergesEnough applies the similarity prune: count position-wise
// matches against the most recently accepted path over the overlapping
// length, and accept only if matching < len(path) − len(path)/3.
func (w *pathWalker) divergesEnough(path []string) bool {
	last := w.results[len(w.results)-1]

	overlap := len(path)
	if len(last) < overlap {
		overlap = len(last)
	}

	matching := 0
	for i := 0; i < overlap; i++ {
		if last[i] == path[i] {
			matching++
		}
	}

	return matching < len(path)-len(path)/3
}

// equalPath reports whether two item sequences are identical.
func equalPath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
