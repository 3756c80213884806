// Package bioflow provides a high-level API for partial order alignment.
//
// This package exposes the POA driver through a simple, easy-to-use API:
// seed a run with the first record, fold in every remaining record, then
// read off the consensus.
//
// Example usage:
//
//	records, err := bioflow.ReadPOARecordsFASTA(file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	builder, err := bioflow.BuildPOA(records, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, row := range builder.Consensus("-") {
//	    fmt.Println(row.Label, row.Symbols)
//	}
package bioflow

import (
	"io"

	"github.com/aria-lang/bioflow-go/internal/poa"
	"github.com/aria-lang/bioflow-go/internal/poa/align"
	"github.com/aria-lang/bioflow-go/internal/poa/consensus"
	"github.com/aria-lang/bioflow-go/internal/poa/dot"
	"github.com/aria-lang/bioflow-go/internal/poa/input"
)

// Re-export types for convenience.
type (
	POABuilder   = poa.Builder
	POAConfig    = align.Config
	POARow       = consensus.Row
	POARecord    = input.Record
	POADebugHook = poa.DebugHook
)

// NewPOA seeds a new POA run from its first (label, sequence) record.
func NewPOA(label string, symbols []string, cfg *POAConfig) (*POABuilder, error) {
	return poa.New(label, symbols, cfg)
}

// BuildPOA runs a complete POA driver pass over records: it seeds the graph
// from the first record, then aligns and incorporates every remaining one.
func BuildPOA(records []POARecord, cfg *POAConfig) (*POABuilder, error) {
	poaRecords := make([]poa.Record, len(records))
	for i, r := range records {
		poaRecords[i] = poa.Record{Label: r.Label, Symbols: r.Symbols}
	}
	return poa.BuildFrom(poaRecords, cfg)
}

// DefaultPOAConfig returns the fixed scoring constants used by POA:
// match +1, mismatch -1, gap -2.
func DefaultPOAConfig() *POAConfig {
	return align.DefaultConfig()
}

// NewPOAConfig validates and constructs a custom POA scoring configuration.
func NewPOAConfig(match, mismatch, gap int) (*POAConfig, error) {
	return align.NewConfig(match, mismatch, gap)
}

// ReadPOARecordsDelimited reads (label, sequence) records from CSV or TSV.
func ReadPOARecordsDelimited(r io.Reader, delimiter rune) ([]POARecord, error) {
	return input.ParseDelimited(r, delimiter)
}

// ReadPOARecordsFASTA reads (label, sequence) records from FASTA, one
// symbol per base.
func ReadPOARecordsFASTA(r io.Reader) ([]POARecord, error) {
	return input.ParseFASTA(r)
}

// WritePOADOT renders a finished POA builder's graph as Graphviz DOT.
func WritePOADOT(b *POABuilder) string {
	return dot.WriteDOT(b.Graph())
}

// WritePOAHTML renders a finished POA builder's graph as a standalone
// vis-network HTML page.
func WritePOAHTML(b *POABuilder) string {
	return dot.WriteHTML(b.Graph())
}

// Version returns the BioFlow version.
func Version() string {
	return "1.0.0"
}

// Info returns information about BioFlow.
func Info() string {
	return "BioFlow v" + Version() + " - Partial Order Alignment toolkit\n" +
		"See https://github.com/aria-lang/bioflow-go for more information.\n"
}
