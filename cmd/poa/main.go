// Command poa computes a partial order alignment consensus from a
// collection of discrete symbol sequences.
//
// Usage:
//
//	poa align -input records.csv -output consensus.txt [-debug] [-graph]
//
// Input records are read from CSV, TSV, or FASTA, selected by file
// extension; output is a plain-text consensus with one padded row per
// input label.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aria-lang/bioflow-go/pkg/bioflow"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "align":
		alignCmd(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`poa - Partial Order Alignment consensus tool

Usage:
  poa align -input <file> -output <file> [options]

Options:
  -input       CSV, TSV, or FASTA file of (label, sequence) records
  -output      Consensus output file (plain text)
  -debug       Print per-alignment debug rows to stderr
  -graph       Also write <output>.graph.dot and <output>.graph.html
  -match       Match score (default 1)
  -mismatch    Mismatch penalty (default -1)
  -gap         Gap penalty (default -2)
  -gap-symbol  Gap placeholder in consensus output (default "-")`)
}

func alignCmd(args []string) {
	fs := flag.NewFlagSet("align", flag.ExitOnError)
	input := fs.String("input", "", "Input records file (CSV, TSV, or FASTA)")
	output := fs.String("output", "", "Consensus output file")
	debug := fs.Bool("debug", false, "Print per-alignment debug rows")
	writeGraph := fs.Bool("graph", false, "Also write graph DOT/HTML files")
	match := fs.Int("match", 1, "Match score")
	mismatch := fs.Int("mismatch", -1, "Mismatch penalty")
	gap := fs.Int("gap", -2, "Gap penalty")
	gapSymbol := fs.String("gap-symbol", "-", "Gap placeholder in output")
	fs.Parse(args)

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Error: both -input and -output are required")
		fs.Usage()
		os.Exit(1)
	}

	records, err := readRecords(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	cfg, err := bioflow.NewPOAConfig(*match, *mismatch, *gap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in scoring configuration: %v\n", err)
		os.Exit(1)
	}

	builder, err := bioflow.NewPOA(records[0].Label, records[0].Symbols, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding alignment: %v\n", err)
		os.Exit(1)
	}

	if *debug {
		builder.SetDebugHook(func(graphRow, matchRow, seqRow []string) {
			width := builder.Width() + 2
			fmt.Fprintf(os.Stderr, "Graph    : %s\n", padJoin(graphRow, width))
			fmt.Fprintf(os.Stderr, "Match    : %s\n", padJoin(matchRow, width))
			fmt.Fprintf(os.Stderr, "Alignment: %s\n\n", padJoin(seqRow, width))
		})
	}

	for _, rec := range records[1:] {
		if err := builder.Add(rec.Label, rec.Symbols); err != nil {
			fmt.Fprintf(os.Stderr, "Error aligning %q: %v\n", rec.Label, err)
			os.Exit(1)
		}
	}

	if *writeGraph {
		if err := os.WriteFile(*output+".graph.dot", []byte(bioflow.WritePOADOT(builder)), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing graph DOT: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*output+".graph.html", []byte(bioflow.WritePOAHTML(builder)), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing graph HTML: %v\n", err)
			os.Exit(1)
		}
	}

	rows := builder.Consensus(*gapSymbol)
	if err := writeConsensus(*output, rows, builder.Width()+2); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing consensus: %v\n", err)
		os.Exit(1)
	}
}

func readRecords(path string) ([]bioflow.POARecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return bioflow.ReadPOARecordsDelimited(file, ',')
	case ".tsv":
		return bioflow.ReadPOARecordsDelimited(file, '\t')
	case ".fasta", ".fa":
		return bioflow.ReadPOARecordsFASTA(file)
	default:
		return bioflow.ReadPOARecordsDelimited(file, ',')
	}
}

func writeConsensus(path string, rows []bioflow.POARow, itemWidth int) error {
	labelWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(center(row.Label, labelWidth))
		sb.WriteByte(' ')
		sb.WriteString(padJoin(row.Symbols, itemWidth))
		sb.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func padJoin(items []string, width int) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(center(item, width))
	}
	return sb.String()
}

// center pads s with spaces to width, favoring an extra space on the right
// when the padding is odd, matching the reference's {:^width$} formatting.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
