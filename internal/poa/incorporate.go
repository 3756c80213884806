package poa

import (
	"github.com/aria-lang/bioflow-go/internal/poa/align"
	"github.com/aria-lang/bioflow-go/internal/poa/graph"
)

// incorporate merges an alignment result for sequence seq (labelled label)
// into g, creating, reusing, or side-linking nodes to preserve the partial
// order invariant. Returns the id of the first node on label's path.
//
// Grounded on the reference POAGraph::add_alignment, with the aligned-to
// update corrected to append the new node's id to each existing sibling
// (and vice versa) rather than a sibling appending its own id to itself.
func incorporate(g *graph.Graph, result align.Result, label string, seq []string) graph.NodeID {
	entries := result.Entries

	seqStart, seqEnd := -1, -1
	for _, e := range entries {
		if e.Kind == align.KindMatch || e.Kind == align.KindGraphGap {
			if seqStart == -1 {
				seqStart = e.SeqPos
			}
			seqEnd = e.SeqPos
		}
	}

	var firstID, headID, tailID graph.NodeID
	hasFirst, hasHead, hasTail := false, false, false

	if seqStart > 0 {
		first, last := addSeqSegment(g, label, seq[0:seqStart])
		firstID, headID = first, last
		hasFirst, hasHead = true, true
	}
	if seqEnd < len(seq)-1 {
		tail, _ := addSeqSegment(g, label, seq[seqEnd+1:])
		tailID = tail
		hasTail = true
	}

	for _, e := range entries {
		if e.Kind == align.KindSeqGap {
			continue
		}

		symbol := seq[e.SeqPos]
		var nodeID graph.NodeID

		if e.Kind == align.KindGraphGap {
			nodeID = g.AddNode(symbol, nil)
		} else {
			m := e.Node
			switch {
			case g.Node(m).Symbol == symbol:
				nodeID = m
			default:
				siblings := g.Node(m).AlignedTo
				found := -1
				for _, s := range siblings {
					if g.Node(s).Symbol == symbol {
						found = int(s)
						break
					}
				}
				if found != -1 {
					nodeID = graph.NodeID(found)
				} else {
					nodeID = g.AddNode(symbol, nil)
					g.AddAlignedTo(nodeID, m)
					for _, s := range siblings {
						g.AddAlignedTo(nodeID, s)
					}
				}
			}
		}

		if hasHead {
			g.AddOrUpdateEdge(headID, nodeID, label)
		}
		headID, hasHead = nodeID, true
		if !hasFirst {
			firstID, hasFirst = nodeID, true
		}
	}

	if hasHead && hasTail {
		g.AddOrUpdateEdge(headID, tailID, label)
	}

	return firstID
}

// addSeqSegment creates a fresh linear chain of nodes for seq, all edges
// labelled label, and returns the chain's first and last node ids.
func addSeqSegment(g *graph.Graph, label string, seq []string) (first, last graph.NodeID) {
	ids := make([]graph.NodeID, len(seq))
	for i, symbol := range seq {
		ids[i] = g.AddNode(symbol, nil)
	}
	for i := 0; i < len(ids)-1; i++ {
		g.AddOrUpdateEdge(ids[i], ids[i+1], label)
	}
	return ids[0], ids[len(ids)-1]
}
