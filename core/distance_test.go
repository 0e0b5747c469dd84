package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/roadgraph/core"
)

func TestConnectedDistance_ZeroBudget(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}})

	// Budget 0 connects an item only to itself.
	assert.True(t, g.ConnectedDistance("A", "A", 0))
	assert.False(t, g.ConnectedDistance("A", "B", 0))
	assert.True(t, g.ConnectedDistance("A", "B", 1))
}

func TestConnectedDistance_Chain(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}})

	assert.False(t, g.ConnectedDistance("A", "D", 2))
	assert.True(t, g.ConnectedDistance("A", "D", 3))
	assert.True(t, g.ConnectedDistance("A", "D", core.MaxTraversalDepth))
}

func TestConnectedDistance_ExternalCap(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}})

	// Budgets above the hard cap are rejected outright, even between
	// directly adjacent items.
	assert.False(t, g.ConnectedDistance("A", "B", core.MaxTraversalDepth+1))
}

func TestConnectedDistance_UnknownItem(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}})

	assert.False(t, g.ConnectedDistance("A", "X", 5))
	assert.False(t, g.ConnectedDistance("X", "A", 5))
}

func TestConnectedDistance_SiblingBranchIndependence(t *testing.T) {
	// A—B, A—C, B—C, C—D. Exploring A→B→C first consumes C on that
	// branch only; the sibling route A→C→D must still see C as free.
	// A shared visited set would wrongly answer false here.
	g := buildGraph(t, [][2]string{{"A", "B"}, {"A", "C"}, {"B", "C"}, {"C", "D"}})

	assert.True(t, g.ConnectedDistance("A", "D", 2))
}

func TestConnectedDistance_BudgetIsPathLength(t *testing.T) {
	// Triangle plus a tail: D is 2 hops from A via C, 3 via B—C.
	g := buildGraph(t, [][2]string{{"A", "B"}, {"A", "C"}, {"B", "C"}, {"C", "D"}})

	assert.False(t, g.ConnectedDistance("A", "D", 1))
	assert.True(t, g.ConnectedDistance("A", "D", 2))
	assert.True(t, g.ConnectedDistance("A", "D", 3))
}
