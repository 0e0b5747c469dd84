// Package viz extracts a bounded neighbourhood of a core.Graph around a
// focus vertex and renders it as Graphviz DOT for external plotting
// tools.
//
// The adapter is a read-only consumer of the core's public query surface
// (Neighbors, HasVertex); it never mutates the graph. Node collection is
// backed by an ordered set, so snapshots and their DOT form are fully
// deterministic.
package viz

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/roadgraph/core"
)

// SnapshotDepth bounds how many hops from the focus vertex a snapshot
// includes. Large road networks are far too big to render whole; fifty
// hops around a focus intersection is the rendered window.
const SnapshotDepth = 50

// Rendering palette, carried over from the original road-map plots.
const (
	edgeColour       = "#ef5350" // road segments
	nodeFillColour   = "#59cd69" // intersections
	nodeBorderColour = "#323232"
)

// ErrFocusNotFound indicates the requested focus item is not in the graph.
var ErrFocusNotFound = errors.New("viz: focus vertex not found")

// Network is a renderable snapshot: the collected vertex items plus
// every edge whose endpoints were both collected.
type Network struct {
	nodes *treeset.Set // vertex items, lexicographically ordered
	edges [][2]string  // endpoint pairs, each ordered a < b, list sorted
}

// Nodes returns the snapshot's vertex items in lexicographic order.
func (n *Network) Nodes() []string {
	items := make([]string, 0, n.nodes.Size())
	for _, v := range n.nodes.Values() {
		items = append(items, v.(string))
	}

	return items
}

// Edges returns the snapshot's edges as lexicographically ordered pairs.
func (n *Network) Edges() [][2]string {
	return n.edges
}

// snapshotWalker collects every vertex reachable from the focus within
// SnapshotDepth hops, depth-first.
type snapshotWalker struct {
	graph *core.Graph
	seen  map[string]struct{}
	nodes *treeset.Set
}

// Snapshot collects the focus vertex plus its bounded neighbourhood and
// the edges among the collected vertices. Returns ErrFocusNotFound when
// the focus item is unknown.
func Snapshot(g *core.Graph, focus string) (*Network, error) {
	if !g.HasVertex(focus) {
		return nil, ErrFocusNotFound
	}

	n := &Network{nodes: treeset.NewWithStringComparator()}
	n.nodes.Add(focus)

	w := &snapshotWalker{graph: g, seen: make(map[string]struct{}), nodes: n.nodes}
	w.collect(focus, 0)

	n.edges = collectEdges(g, n.nodes)

	return n, nil
}

// collect adds every unvisited neighbour of item to the node set and
// recurses, stopping once the hop budget is spent.
func (w *snapshotWalker) collect(item string, hops int) {
	if hops == SnapshotDepth {
		return
	}
	w.seen[item] = struct{}{}

	nbs, _ := w.graph.Neighbors(item)
	var nb string
	for _, nb = range nbs {
		if _, ok := w.seen[nb]; ok {
			continue
		}
		w.nodes.Add(nb)
		w.collect(nb, hops+1)
	}
}

// collectEdges walks the collected nodes in order and keeps each edge
// once, as its lexicographically ordered endpoint pair.
func collectEdges(g *core.Graph, nodes *treeset.Set) [][2]string {
	var edges [][2]string
	var item, nb string
	for _, v := range nodes.Values() {
		item = v.(string)
		nbs, _ := g.Neighbors(item)
		for _, nb = range nbs {
			if item < nb && nodes.Contains(nb) {
				edges = append(edges, [2]string{item, nb})
			}
		}
	}

	return edges
}

// WriteDOT writes the snapshot as an undirected Graphviz graph.
// Output is deterministic: nodes first, sorted, then edges, sorted.
func (n *Network) WriteDOT(w io.Writer) error {
	if _, err := fmt.Fprintf(w,
		"graph roadnet {\n"+
			"\tnode [shape=circle, style=filled, color=%q, fillcolor=%q];\n"+
			"\tedge [color=%q, penwidth=1.5];\n",
		nodeBorderColour, nodeFillColour, edgeColour); err != nil {
		return fmt.Errorf("viz: write dot: %w", err)
	}

	for _, item := range n.Nodes() {
		if _, err := fmt.Fprintf(w, "\t%s;\n", quote(item)); err != nil {
			return fmt.Errorf("viz: write dot: %w", err)
		}
	}
	for _, e := range n.edges {
		if _, err := fmt.Fprintf(w, "\t%s -- %s;\n", quote(e[0]), quote(e[1])); err != nil {
			return fmt.Errorf("viz: write dot: %w", err)
		}
	}

	if _, err := io.WriteString(w, "}\n"); err != nil {
		return fmt.Errorf("viz: write dot: %w", err)
	}

	return nil
}

// DOT returns the snapshot in Graphviz DOT form.
func (n *Network) DOT() string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = n.WriteDOT(&sb)

	return sb.String()
}

// quote wraps a vertex item in a DOT double-quoted ID.
func quote(item string) string {
	return `"` + strings.ReplaceAll(item, `"`, `\"`) + `"`
}
