// Package poa drives a Partial Order Alignment run: it owns the single
// Graph Store instance, runs the DP Aligner and Graph Incorporator for
// each sequence after the first, and runs Consensus Layout once at the end.
//
// The driver is single-threaded and synchronous: all mutation of the
// underlying graph happens serially, with no background work and no
// locking discipline, matching the core's concurrency model.
package poa

import (
	"github.com/aria-lang/bioflow-go/internal/poa/align"
	"github.com/aria-lang/bioflow-go/internal/poa/consensus"
	"github.com/aria-lang/bioflow-go/internal/poa/graph"
)

// DebugHook is invoked once per alignment, before incorporation, with three
// equal-length display sequences: the graph-side symbols (or gap markers),
// match markers ('|' where both sides agree, ' ' otherwise), and the
// sequence-side symbols. Cells are not pre-padded; callers that need fixed-
// width columns should pad using Builder.Width().
type DebugHook func(graphRow, matchRow, seqRow []string)

// Builder holds the POA state described in spec §3: the graph, the labels
// consumed so far with their start node ids, and a running maximum symbol
// width used for downstream formatting. The consumed sequences themselves
// are not stored; each one survives only as its labelled path in the graph.
type Builder struct {
	graph     *graph.Graph
	cfg       *align.Config
	starts    []consensus.Start
	width     int
	debugHook DebugHook
}

// New creates a POA state seeded with the first (label, sequence) pair: its
// symbols become a linear chain of fresh nodes with no predecessors.
func New(label string, seq []string, cfg *align.Config) (*Builder, error) {
	if len(seq) == 0 {
		return nil, &EmptySequenceError{Label: label}
	}
	if cfg == nil {
		cfg = align.DefaultConfig()
	}

	g := graph.New()
	first, _ := addSeqSegment(g, label, seq)

	b := &Builder{graph: g, cfg: cfg, starts: []consensus.Start{{Label: label, Node: first}}}
	b.trackWidth(seq)
	return b, nil
}

// SetDebugHook installs an optional hook invoked before each incorporation.
func (b *Builder) SetDebugHook(hook DebugHook) {
	b.debugHook = hook
}

// Width returns the running maximum symbol width seen so far.
func (b *Builder) Width() int {
	return b.width
}

// Graph exposes the underlying graph store for read-only inspection (e.g.
// DOT rendering).
func (b *Builder) Graph() *graph.Graph {
	return b.graph
}

// Add aligns seq against the current graph and incorporates it as a new
// labelled path, running Component B (DP Aligner) then Component C (Graph
// Incorporator) from spec §4.E.
func (b *Builder) Add(label string, seq []string) error {
	if len(seq) == 0 {
		return &EmptySequenceError{Label: label}
	}
	for _, st := range b.starts {
		if st.Label == label {
			return &DuplicateLabelError{Label: label}
		}
	}

	result, err := align.Align(seq, b.graph, b.cfg)
	if err != nil {
		return err
	}

	if b.debugHook != nil {
		b.debugHook(debugRows(b.graph, seq, result))
	}

	first := incorporate(b.graph, result, label, seq)
	b.starts = append(b.starts, consensus.Start{Label: label, Node: first})
	b.trackWidth(seq)
	return nil
}

// Consensus runs Component D (Consensus Layout) once over the finished
// graph and returns one row per recorded label, in insertion order.
func (b *Builder) Consensus(gapSymbol string) []consensus.Row {
	return consensus.Compute(b.graph, b.starts, gapSymbol)
}

// Record is the minimal (label, symbols) pair BuildFrom consumes. It mirrors
// input.Record's shape without making this package depend on input.
type Record struct {
	Label   string
	Symbols []string
}

// BuildFrom runs a complete POA driver pass over records: it seeds the graph
// from the first record, then aligns and incorporates every remaining one in
// order. bioflow.BuildPOA (and through it the /api/poa/align handler) uses
// it; cmd/poa runs the same loop by hand so it can install a debug hook
// between seeding and the first Add.
func BuildFrom(records []Record, cfg *align.Config) (*Builder, error) {
	if len(records) == 0 {
		return nil, &EmptyRecordsError{}
	}

	b, err := New(records[0].Label, records[0].Symbols, cfg)
	if err != nil {
		return nil, err
	}

	for _, rec := range records[1:] {
		if err := b.Add(rec.Label, rec.Symbols); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func (b *Builder) trackWidth(seq []string) {
	for _, symbol := range seq {
		if len(symbol) > b.width {
			b.width = len(symbol)
		}
	}
}

// debugRows renders an alignment result as three parallel display
// sequences for the debug hook, mirroring the reference's
// SeqGraphAlignment::to_string.
func debugRows(g *graph.Graph, seq []string, result align.Result) (graphRow, matchRow, seqRow []string) {
	for _, e := range result.Entries {
		var gSym, sSym string
		switch e.Kind {
		case align.KindMatch:
			gSym = g.Node(e.Node).Symbol
			sSym = seq[e.SeqPos]
		case align.KindSeqGap:
			gSym = g.Node(e.Node).Symbol
			sSym = "-"
		case align.KindGraphGap:
			gSym = "-"
			sSym = seq[e.SeqPos]
		}

		match := " "
		if gSym == sSym {
			match = "|"
		}

		graphRow = append(graphRow, gSym)
		matchRow = append(matchRow, match)
		seqRow = append(seqRow, sSym)
	}
	return graphRow, matchRow, seqRow
}
