// Package core defines the central Graph and Vertex types for an
// undirected, unit-cost road network, and provides the mutation,
// adjacency, and traversal queries built on top of them.
//
// Graph is the single public entry point: it owns every Vertex in an
// item-keyed arena, and neighbour relations are stored as identity sets
// resolved through that arena, so there are no cyclic vertex pointers.
//
// All control flow is single-threaded, synchronous, and recursive with
// hard depth ceilings; a Graph holds no locks and is NOT safe for
// concurrent use. Every top-level query allocates its own visited/stack
// state, so sequential queries never interfere with one another.
//
// This file declares Vertex, Graph, sentinel errors, depth constants,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex item is the empty string.
//	ErrVertexNotFound - edge endpoint does not exist.
//	ErrSelfLoop       - edge endpoints are the same item.
//	ErrEmptyGraph     - degree statistics requested on a vertex-free graph.
package core

import (
	"errors"
	"sort"
)

const (
	// MaxTraversalDepth is the hard recursion-depth ceiling shared by all
	// traversal queries. It is a call-depth guard against runaway
	// recursion on dense or cyclic networks, not a semantic path bound:
	// beyond this depth a branch unconditionally reports unreachable.
	MaxTraversalDepth = 20

	// DefaultPathDepth is the depth cap used by ConnectedPath and
	// ShortestPath when the caller supplies none. WithMaxDepth values
	// above MaxTraversalDepth fall back to this default.
	DefaultPathDepth = 20
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex item is empty.
	ErrEmptyVertexID = errors.New("core: vertex item is empty")

	// ErrVertexNotFound indicates an edge operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an edge was attempted between a vertex and itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrEmptyGraph indicates a statistic that requires at least one vertex
	// was requested on an empty graph.
	ErrEmptyGraph = errors.New("core: graph has no vertices")
)

// Vertex represents one point in the network, identified by its item.
//
// Item is the opaque identity (e.g. an intersection ID); equality is by
// identity, never by content. The neighbour relation is symmetric by
// invariant and stored as an item set resolved through the owning
// Graph's arena.
type Vertex struct {
	// Item uniquely identifies this Vertex within its Graph.
	Item string

	// neighbours holds the items directly connected to this vertex.
	neighbours map[string]struct{}
}

// neighbourItems returns this vertex's adjacent items in lexicographic
// ascending order. Traversals rely on this for deterministic exploration.
func (v *Vertex) neighbourItems() []string {
	items := make([]string, 0, len(v.neighbours))
	var item string
	for item = range v.neighbours {
		items = append(items, item)
	}
	sort.Strings(items)

	return items
}

// Graph is the in-memory road-network structure: an arena of vertices
// keyed by item. Vertices are exclusively owned by the Graph; neighbour
// sets hold item identities, never pointers, and are resolved through
// the arena on every hop.
//
// Mutating a Graph while a traversal is in flight is not a supported
// access pattern.
type Graph struct {
	// vertices maps item identity → owned Vertex.
	vertices map[string]*Vertex
}

// NewGraph creates an empty Graph with no vertices or edges.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{vertices: make(map[string]*Vertex)}
}
