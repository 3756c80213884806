// Package align implements the sequence-to-graph dynamic-programming
// aligner: a generalization of Needleman-Wunsch global alignment from
// linear sequences to a partial order graph.
package align

import (
	"fmt"

	"github.com/aria-lang/bioflow-go/internal/poa/graph"
)

// Config holds the three integer scoring parameters for the DP recurrence:
// a positive match score, a non-positive mismatch penalty, a non-positive
// gap penalty.
type Config struct {
	Match    int
	Mismatch int
	Gap      int
}

// NewConfig validates and constructs a scoring configuration.
func NewConfig(match, mismatch, gap int) (*Config, error) {
	if match <= 0 {
		return nil, fmt.Errorf("poa/align: match score must be positive")
	}
	if mismatch > 0 {
		return nil, fmt.Errorf("poa/align: mismatch penalty must be <= 0")
	}
	if gap > 0 {
		return nil, fmt.Errorf("poa/align: gap penalty must be <= 0")
	}
	return &Config{Match: match, Mismatch: mismatch, Gap: gap}, nil
}

// DefaultConfig returns the fixed scoring constants from the spec: match
// +1, mismatch -1, gap -2.
func DefaultConfig() *Config {
	return &Config{Match: 1, Mismatch: -1, Gap: -2}
}

// Kind tags a column of an alignment Result.
type Kind int

const (
	// KindMatch: both a sequence position and a graph node are present.
	KindMatch Kind = iota
	// KindSeqGap: gap in the sequence; only the graph node is present.
	KindSeqGap
	// KindGraphGap: gap in the graph; only the sequence position is present.
	KindGraphGap
)

// Entry is one column of an alignment result. At most one of SeqPos/Node
// is absent (which one is given by Kind), never both — this is the
// tagged representation recommended over two parallel optional arrays,
// since that scheme admits a nonsensical (absent, absent) state.
type Entry struct {
	Kind   Kind
	SeqPos int // valid iff Kind != KindSeqGap
	Node   graph.NodeID
}

// Result is the full column-by-column alignment of a sequence against a graph.
type Result struct {
	Entries []Entry
}

// Align aligns seq against g using global (Needleman-Wunsch-style) scoring.
//
// Preconditions: seq is non-empty (returned as a malformed-input error,
// since it is a contract violation a caller can trigger with bad data); g
// has at least one node (a graph with zero nodes can only arise from a
// driver bug, so that case panics rather than erroring).
func Align(seq []string, g *graph.Graph, cfg *Config) (Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if len(seq) == 0 {
		return Result{}, fmt.Errorf("poa/align: sequence must be non-empty")
	}
	if g.NodeCount() == 0 {
		panic("poa/align: cannot align against an empty graph")
	}

	topo := g.NodesTopological()
	pos := make(map[graph.NodeID]int, len(topo))
	for i, id := range topo {
		pos[id] = i
	}

	G := len(topo)
	L := len(seq)

	score := newMatrix(G+1, L+1)
	backGraph := newMatrix(G+1, L+1)
	backSeq := newMatrix(G+1, L+1)

	// Row 0: distance from the start of the sequence.
	for s := 0; s <= L; s++ {
		score[0][s] = s * cfg.Gap
	}

	// Column 0: distance from any source node, computed in topological order.
	for gi, id := range topo {
		preds := g.Predecessors(id)
		var best int
		if len(preds) == 0 {
			best = score[0][0]
		} else {
			best = score[pos[preds[0]]+1][0]
			for _, p := range preds[1:] {
				if v := score[pos[p]+1][0]; v > best {
					best = v
				}
			}
		}
		score[gi+1][0] = best + cfg.Gap
	}

	for gi, id := range topo {
		symbol := g.Node(id).Symbol
		preds := g.Predecessors(id)

		predPositions := make([]int, 0, len(preds)+1)
		if len(preds) == 0 {
			predPositions = append(predPositions, -1)
		} else {
			for _, p := range preds {
				predPositions = append(predPositions, pos[p])
			}
		}

		for s := 0; s < L; s++ {
			best := candidate{score: score[gi+1][s] + cfg.Gap, graphPos: gi + 1, seqPos: s}

			for _, pp := range predPositions {
				del := candidate{score: score[pp+1][s+1] + cfg.Gap, graphPos: pp + 1, seqPos: s + 1}
				if del.greater(best) {
					best = del
				}

				matchScore := cfg.Mismatch
				if seq[s] == symbol {
					matchScore = cfg.Match
				}
				m := candidate{score: score[pp+1][s] + matchScore, graphPos: pp + 1, seqPos: s}
				if m.greater(best) {
					best = m
				}
			}

			score[gi+1][s+1] = best.score
			backGraph[gi+1][s+1] = best.graphPos
			backSeq[gi+1][s+1] = best.seqPos
		}
	}

	besti, bestj := bestTerminal(g, topo, pos, score, L)

	var entries []Entry
	for besti != 0 || bestj != 0 {
		nexti := backGraph[besti][bestj]
		nextj := backSeq[besti][bestj]

		var e Entry
		hasSeq := nextj != bestj
		hasNode := nexti != besti
		switch {
		case hasSeq && hasNode:
			e = Entry{Kind: KindMatch, SeqPos: bestj - 1, Node: topo[besti-1]}
		case hasSeq:
			e = Entry{Kind: KindGraphGap, SeqPos: bestj - 1}
		case hasNode:
			e = Entry{Kind: KindSeqGap, Node: topo[besti-1]}
		default:
			panic("poa/align: backtrace produced a column with neither a sequence position nor a graph node")
		}
		entries = append(entries, e)

		besti, bestj = nexti, nextj
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	return Result{Entries: entries}, nil
}

// bestTerminal finds the terminal-node row with the highest score in the
// final column, ties broken by earliest topological position.
func bestTerminal(g *graph.Graph, topo []graph.NodeID, pos map[graph.NodeID]int, score [][]int, L int) (int, int) {
	terminals := g.Terminals()
	if len(terminals) == 0 {
		panic("poa/align: graph has no terminal node (acyclicity invariant violated)")
	}

	besti := -1
	bestScore := 0
	for _, id := range terminals {
		p := pos[id]
		if besti == -1 || score[p+1][L] > bestScore || (score[p+1][L] == bestScore && p+1 < besti) {
			besti = p + 1
			bestScore = score[p+1][L]
		}
	}
	return besti, L
}

type candidate struct {
	score    int
	graphPos int
	seqPos   int
}

// greater reports whether c should replace other under the spec's
// lexicographic tie-break: highest score, then largest (graphPos, seqPos).
func (c candidate) greater(other candidate) bool {
	if c.score != other.score {
		return c.score > other.score
	}
	if c.graphPos != other.graphPos {
		return c.graphPos > other.graphPos
	}
	return c.seqPos > other.seqPos
}

func newMatrix(rows, cols int) [][]int {
	m := make([][]int, rows)
	backing := make([]int, rows*cols)
	for i := range m {
		m[i] = backing[i*cols : (i+1)*cols]
	}
	return m
}
