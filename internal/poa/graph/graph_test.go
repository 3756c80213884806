package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNodeAndEdge(t *testing.T) {
	g := New()
	a := g.AddNode("A", nil)
	b := g.AddNode("B", nil)

	g.AddOrUpdateEdge(a, b, "seq1")

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, []NodeID{b}, g.Successors(a))
	assert.Equal(t, []NodeID{a}, g.Predecessors(b))

	edge, ok := g.Edge(a, b)
	require.True(t, ok)
	assert.Equal(t, []string{"seq1"}, edge.Labels)
}

func TestAddOrUpdateEdgeAppendsLabel(t *testing.T) {
	g := New()
	a := g.AddNode("A", nil)
	b := g.AddNode("B", nil)

	g.AddOrUpdateEdge(a, b, "seq1")
	g.AddOrUpdateEdge(a, b, "seq2")

	edge, ok := g.Edge(a, b)
	require.True(t, ok)
	assert.Equal(t, []string{"seq1", "seq2"}, edge.Labels)
	assert.Equal(t, []NodeID{b}, g.Successors(a), "a second call must not duplicate the edge")
}

func TestAddOrUpdateEdgeRejectsSelfEdge(t *testing.T) {
	g := New()
	a := g.AddNode("A", nil)

	assert.Panics(t, func() {
		g.AddOrUpdateEdge(a, a, "seq1")
	})
}

func TestAddAlignedToIsSymmetric(t *testing.T) {
	g := New()
	a := g.AddNode("A", nil)
	b := g.AddNode("B", nil)

	g.AddAlignedTo(a, b)

	assert.Contains(t, g.Node(a).AlignedTo, b)
	assert.Contains(t, g.Node(b).AlignedTo, a)
}

func TestNodesTopologicalLinearChain(t *testing.T) {
	g := New()
	a := g.AddNode("A", nil)
	b := g.AddNode("B", nil)
	c := g.AddNode("C", nil)
	g.AddOrUpdateEdge(a, b, "seq1")
	g.AddOrUpdateEdge(b, c, "seq1")

	order := g.NodesTopological()
	assert.Equal(t, []NodeID{a, b, c}, order)
}

func TestNodesTopologicalRespectsConstraints(t *testing.T) {
	// Diamond: a -> b, a -> c, b -> d, c -> d.
	g := New()
	a := g.AddNode("A", nil)
	b := g.AddNode("B", nil)
	c := g.AddNode("C", nil)
	d := g.AddNode("D", nil)
	g.AddOrUpdateEdge(a, b, "seq1")
	g.AddOrUpdateEdge(a, c, "seq1")
	g.AddOrUpdateEdge(b, d, "seq1")
	g.AddOrUpdateEdge(c, d, "seq1")

	order := g.NodesTopological()
	positionOf := func(id NodeID) int {
		for i, v := range order {
			if v == id {
				return i
			}
		}
		t.Fatalf("node %d not found in topological order", id)
		return -1
	}

	assert.Less(t, positionOf(a), positionOf(b))
	assert.Less(t, positionOf(a), positionOf(c))
	assert.Less(t, positionOf(b), positionOf(d))
	assert.Less(t, positionOf(c), positionOf(d))
}

func TestTerminals(t *testing.T) {
	g := New()
	a := g.AddNode("A", nil)
	b := g.AddNode("B", nil)
	c := g.AddNode("C", nil)
	g.AddOrUpdateEdge(a, b, "seq1")

	assert.ElementsMatch(t, []NodeID{b, c}, g.Terminals())
}
