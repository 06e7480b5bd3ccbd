// Package handlers provides HTTP handlers for the StarMSA API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/centerstar-bio/starmsa/pkg/starmsa"
)

// SequenceRequest represents a request with a sequence.
type SequenceRequest struct {
	Sequence string `json:"sequence"`
}

// SequenceInput represents one sequence in a multi-sequence request.
type SequenceInput struct {
	ID    string `json:"id,omitempty"`
	Bases string `json:"bases"`
}

// ValidateResponse represents validation result.
type ValidateResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ValidateHandler handles sequence validation requests.
func ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	_, err := starmsa.NewSequence(req.Sequence)

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		json.NewEncoder(w).Encode(ValidateResponse{
			Valid:   false,
			Message: err.Error(),
		})
	} else {
		json.NewEncoder(w).Encode(ValidateResponse{
			Valid: true,
		})
	}
}

// BatchValidateRequest represents a batch validation request.
type BatchValidateRequest struct {
	Sequences []SequenceInput `json:"sequences"`
}

// BatchFailure represents one failed record in a batch.
type BatchFailure struct {
	Index   int    `json:"index"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

// BatchValidateResponse represents a batch validation result.
type BatchValidateResponse struct {
	Total    int            `json:"total"`
	Valid    int            `json:"valid"`
	Invalid  int            `json:"invalid"`
	Failures []BatchFailure `json:"failures"`
}

// BatchValidateHandler validates every sequence in the request and
// reports each failure.
func BatchValidateHandler(w http.ResponseWriter, r *http.Request) {
	var req BatchValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	records := make([]starmsa.Record, len(req.Sequences))
	for i, s := range req.Sequences {
		records[i] = starmsa.Record{ID: s.ID, Bases: s.Bases}
	}

	report := starmsa.CheckAll(records)

	failures := make([]BatchFailure, len(report.Failures))
	for i, f := range report.Failures {
		failures[i] = BatchFailure{
			Index:   f.Index,
			ID:      f.ID,
			Message: f.Err.Error(),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(BatchValidateResponse{
		Total:    report.Total,
		Valid:    report.Valid,
		Invalid:  report.Invalid(),
		Failures: failures,
	})
}

// SequenceInfoResponse represents sequence information.
type SequenceInfoResponse struct {
	Length       int     `json:"length"`
	GCContent    float64 `json:"gc_content"`
	ACount       int     `json:"a_count"`
	CCount       int     `json:"c_count"`
	GCount       int     `json:"g_count"`
	TCount       int     `json:"t_count"`
	NCount       int     `json:"n_count"`
	HasAmbiguous bool    `json:"has_ambiguous"`
}

// SequenceInfoHandler handles sequence info requests.
func SequenceInfoHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seq, err := starmsa.NewSequence(req.Sequence)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	counts := seq.BaseCounts()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SequenceInfoResponse{
		Length:       seq.Len(),
		GCContent:    seq.GCContent(),
		ACount:       counts.A,
		CCount:       counts.C,
		GCount:       counts.G,
		TCount:       counts.T,
		NCount:       counts.N,
		HasAmbiguous: seq.HasAmbiguous(),
	})
}
