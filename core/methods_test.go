package core_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadgraph/core"
)

// buildChain creates an undirected chain N0—N1—…—N(n-1).
func buildChain(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex("N"+strconv.Itoa(i)))
	}
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1)))
	}

	return g
}

// buildGraph creates vertices for every item mentioned in edges and wires them up.
func buildGraph(t *testing.T, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		for _, item := range e {
			if !g.HasVertex(item) {
				require.NoError(t, g.AddVertex(item))
			}
		}
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func TestAddVertex_EmptyItem(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.Equal(t, 0, g.VertexCount())
}

func TestAddVertex_SilentReplacement(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}})

	// Re-adding an existing item replaces the vertex; its adjacency is
	// gone from the new vertex's side. Documented contract, not a bug.
	require.NoError(t, g.AddVertex("A"))
	nbs, ok := g.Neighbors("A")
	assert.True(t, ok)
	assert.Empty(t, nbs)
}

func TestAddEdge_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	assert.ErrorIs(t, g.AddEdge("A", "A"), core.ErrSelfLoop)
}

func TestAddEdge_MissingEndpoint(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	assert.ErrorIs(t, g.AddEdge("A", "X"), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge("X", "A"), core.ErrVertexNotFound)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_Idempotent(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}})
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "A"))

	assert.Equal(t, 1, g.EdgeCount())
}

func TestAdjacent_Symmetry(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "C"}})

	assert.True(t, g.Adjacent("A", "B"))
	assert.True(t, g.Adjacent("B", "A"))
	assert.False(t, g.Adjacent("A", "C"))
	assert.False(t, g.Adjacent("C", "A"))
}

func TestAdjacent_UnknownItem(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}})

	// Soft false for out-of-universe items, never an error.
	assert.False(t, g.Adjacent("A", "X"))
	assert.False(t, g.Adjacent("X", "A"))
	assert.False(t, g.Adjacent("X", "Y"))
}

func TestNeighbors(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "C"}})

	nbs, ok := g.Neighbors("B")
	assert.True(t, ok)
	assert.Equal(t, []string{"A", "C"}, nbs)

	nbs, ok = g.Neighbors("X")
	assert.False(t, ok)
	assert.Nil(t, nbs)
}

func TestNeighbors_Isolated(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	nbs, ok := g.Neighbors("A")
	assert.True(t, ok)
	assert.NotNil(t, nbs)
	assert.Empty(t, nbs)
}

func TestEdgeCount_Triangle(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})
	assert.Equal(t, 3, g.EdgeCount())
}

func TestMaxDegree_Star(t *testing.T) {
	g := buildGraph(t, [][2]string{{"C", "X"}, {"C", "Y"}, {"C", "Z"}})

	deg, err := g.MaxDegree()
	assert.NoError(t, err)
	assert.Equal(t, 3, deg)
}

func TestMaxDegree_EmptyGraph(t *testing.T) {
	g := core.NewGraph()
	_, err := g.MaxDegree()
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestVertices_SortedAndCounted(t *testing.T) {
	g := buildGraph(t, [][2]string{{"B", "C"}, {"A", "B"}})

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.Equal(t, 3, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("D"))
	assert.False(t, g.HasVertex(""))
}
