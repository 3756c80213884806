package dot

import (
	"testing"

	"github.com/aria-lang/bioflow-go/internal/poa/graph"
	"github.com/stretchr/testify/assert"
)

func TestWriteDOTIncludesNodesAndEdges(t *testing.T) {
	g := graph.New()
	a := g.AddNode("T", nil)
	b := g.AddNode("G", nil)
	g.AddOrUpdateEdge(a, b, "seq1")
	g.AddOrUpdateEdge(a, b, "seq2")

	out := WriteDOT(g)

	assert.Contains(t, out, "digraph poa {")
	assert.Contains(t, out, `0 [label="T"]`)
	assert.Contains(t, out, `1 [label="G"]`)
	assert.Contains(t, out, "0 -> 1")
	assert.Contains(t, out, "Fragments: [seq1, seq2]")
	assert.Contains(t, out, "penwidth=2")
}

func TestWriteDOTCapsEdgeWeight(t *testing.T) {
	g := graph.New()
	a := g.AddNode("A", nil)
	b := g.AddNode("B", nil)
	for i := 0; i < 15; i++ {
		g.AddOrUpdateEdge(a, b, string(rune('a'+i)))
	}

	out := WriteDOT(g)
	assert.Contains(t, out, "penwidth=10 minlen=10")
}

func TestWriteHTMLEmbedsDOTAndVisNetwork(t *testing.T) {
	g := graph.New()
	g.AddNode("A", nil)

	out := WriteHTML(g)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "vis-network")
	assert.Contains(t, out, "digraph poa")
}
