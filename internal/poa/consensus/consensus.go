// Package consensus derives a linear multiple-sequence-alignment layout
// from a finished partial order graph: one column per distinct aligned-to
// clique, one row per input sequence.
package consensus

import "github.com/aria-lang/bioflow-go/internal/poa/graph"

// DefaultGap is the gap placeholder used when no override is configured.
const DefaultGap = "-"

// Row is one input sequence's consensus alignment row.
type Row struct {
	Label   string
	Symbols []string
}

// Start pairs a sequence's label with the id of its first node on the graph.
type Start struct {
	Label string
	Node  graph.NodeID
}

// Compute assigns each node a column index and walks each recorded label's
// path to emit one symbol row per input sequence, in the order the labels
// were recorded.
//
// Grounded on the reference Consensus::compute: column(n) is the minimum
// column already assigned among n's aligned-to siblings, or a freshly
// allocated column if none of them has been assigned one yet.
func Compute(g *graph.Graph, starts []Start, gapSymbol string) []Row {
	if gapSymbol == "" {
		gapSymbol = DefaultGap
	}

	topo := g.NodesTopological()
	column := make(map[graph.NodeID]int, len(topo))
	nextColumn := 0

	for _, id := range topo {
		best := -1
		for _, sib := range g.Node(id).AlignedTo {
			if c, ok := column[sib]; ok {
				if best == -1 || c < best {
					best = c
				}
			}
		}
		if best == -1 {
			column[id] = nextColumn
			nextColumn++
		} else {
			column[id] = best
		}
	}

	rows := make([]Row, 0, len(starts))
	for _, st := range starts {
		symbols := make([]string, nextColumn)
		for i := range symbols {
			symbols[i] = gapSymbol
		}

		current, ok := st.Node, true
		for ok {
			symbols[column[current]] = g.Node(current).Symbol

			next := graph.NodeID(-1)
			found := false
			for _, succ := range g.Successors(current) {
				edge, _ := g.Edge(current, succ)
				if hasLabel(edge.Labels, st.Label) {
					next = succ
					found = true
					break
				}
			}
			current, ok = next, found
		}

		rows = append(rows, Row{Label: st.Label, Symbols: symbols})
	}

	return rows
}

func hasLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
