// Package input reads the ordered (label, sequence) records a POA run
// consumes, from CSV, TSV, or FASTA, and validates them against the core's
// input contract: unique labels, non-empty sequences, a non-empty record
// list.
package input

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/aria-lang/bioflow-go/internal/sequence"
)

// Record is one input sequence: a unique label and its ordered symbols.
type Record struct {
	Label   string
	Symbols []string
}

// DuplicateLabelError is returned when two records share a label.
type DuplicateLabelError struct {
	Label string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("poa/input: duplicate label %q", e.Label)
}

// EmptySequenceError is returned when a record's sequence has no symbols.
type EmptySequenceError struct {
	Label string
}

func (e *EmptySequenceError) Error() string {
	return fmt.Sprintf("poa/input: sequence %q must be non-empty", e.Label)
}

// EmptyRecordsError is returned when no records are found at all.
type EmptyRecordsError struct{}

func (e *EmptyRecordsError) Error() string { return "poa/input: no records found" }

// ParseDelimited reads records in "label,sym,sym,...\n" form (or
// tab-delimited), one record per line, mirroring original_source's CSV/TSV
// reader.
func ParseDelimited(r io.Reader, delimiter rune) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("poa/input: reading records: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		records = append(records, Record{Label: row[0], Symbols: row[1:]})
	}

	return validate(records)
}

// ParseFASTA reads records from FASTA, one record per sequence, with each
// base becoming its own symbol column. Each sequence is upper-cased and
// validated as DNA by the sequence package, so a POA run can be driven
// directly off a FASTA file.
func ParseFASTA(r io.Reader) ([]Record, error) {
	sequences, err := parseFASTASequences(r)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(sequences))
	for i, s := range sequences {
		label := s.ID
		if label == "" {
			label = fmt.Sprintf("sequence_%d", i+1)
		}
		symbols := make([]string, len(s.Bases))
		for j, b := range s.Bases {
			symbols[j] = string(b)
		}
		records = append(records, Record{Label: label, Symbols: symbols})
	}

	return validate(records)
}

// parseFASTASequences scans FASTA text line by line: a '>' line starts a
// record (ID up to the first space, the rest as description) and the
// following lines are concatenated into its bases.
func parseFASTASequences(r io.Reader) ([]*sequence.Sequence, error) {
	sequences := make([]*sequence.Sequence, 0)
	var currentID, currentDesc string
	var currentBases strings.Builder

	scanner := bufio.NewScanner(r)

	flush := func() error {
		if currentBases.Len() == 0 {
			return nil
		}
		seq, err := sequence.WithMetadata(currentBases.String(), currentID, currentDesc, sequence.DNA)
		if err != nil {
			return err
		}
		sequences = append(sequences, seq)
		currentBases.Reset()
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}
			header := line[1:]
			parts := strings.SplitN(header, " ", 2)
			currentID = parts[0]
			currentDesc = ""
			if len(parts) > 1 {
				currentDesc = parts[1]
			}
		} else {
			currentBases.WriteString(line)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("poa/input: reading FASTA: %w", err)
	}

	return sequences, nil
}

func validate(records []Record) ([]Record, error) {
	if len(records) == 0 {
		return nil, &EmptyRecordsError{}
	}

	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if len(rec.Symbols) == 0 {
			return nil, &EmptySequenceError{Label: rec.Label}
		}
		if seen[rec.Label] {
			return nil, &DuplicateLabelError{Label: rec.Label}
		}
		seen[rec.Label] = true
	}

	return records, nil
}
