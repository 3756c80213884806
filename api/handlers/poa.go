package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aria-lang/bioflow-go/pkg/bioflow"
)

// POARecordInput represents one input record of a POA alignment request.
type POARecordInput struct {
	Label    string `json:"label"`
	Sequence string `json:"sequence"`
}

// POAAlignRequest represents a POA alignment request.
type POAAlignRequest struct {
	Records   []POARecordInput `json:"records"`
	Match     int              `json:"match"`
	Mismatch  int              `json:"mismatch"`
	Gap       int              `json:"gap"`
	GapSymbol string           `json:"gap_symbol"`
}

// POARow represents one row of a consensus response.
type POARow struct {
	Label   string   `json:"label"`
	Symbols []string `json:"symbols"`
}

// POAAlignResponse represents the response for a POA alignment.
type POAAlignResponse struct {
	Rows  []POARow `json:"rows"`
	Width int      `json:"width"`
}

// POAAlignHandler handles partial order alignment requests: it runs the
// whole driver (seed, align+incorporate each remaining record, consensus)
// over the supplied records and returns the consensus rows.
func POAAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req POAAlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	if len(req.Records) == 0 {
		http.Error(w, `{"error": "records must not be empty"}`, http.StatusBadRequest)
		return
	}

	match, mismatch, gap := req.Match, req.Mismatch, req.Gap
	if match == 0 && mismatch == 0 && gap == 0 {
		match, mismatch, gap = 1, -1, -2
	}
	cfg, err := bioflow.NewPOAConfig(match, mismatch, gap)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	records := make([]bioflow.POARecord, len(req.Records))
	for i, rec := range req.Records {
		records[i] = bioflow.POARecord{Label: rec.Label, Symbols: symbolsOf(rec.Sequence)}
	}

	builder, err := bioflow.BuildPOA(records, cfg)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	rows := builder.Consensus(req.GapSymbol)
	response := POAAlignResponse{Rows: make([]POARow, len(rows))}
	for i, row := range rows {
		response.Rows[i] = POARow{Label: row.Label, Symbols: row.Symbols}
	}
	if len(response.Rows) > 0 {
		response.Width = len(response.Rows[0].Symbols)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// symbolsOf splits a sequence string into one symbol per character.
func symbolsOf(sequence string) []string {
	symbols := make([]string, len(sequence))
	for i, b := range []byte(sequence) {
		symbols[i] = string(b)
	}
	return symbols
}
