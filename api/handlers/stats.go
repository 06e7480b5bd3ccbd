package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/centerstar-bio/starmsa/pkg/starmsa"
)

// SequenceSetRequest represents a request with multiple sequences.
type SequenceSetRequest struct {
	Sequences []string `json:"sequences"`
}

// SequenceSetStatsHandler handles sequence set statistics requests.
func SequenceSetStatsHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	sequences := make([]*starmsa.Sequence, 0, len(req.Sequences))
	for i, s := range req.Sequences {
		seq, err := starmsa.NewSequence(s)
		if err != nil {
			http.Error(w, `{"error": "`+fmt.Sprintf("sequence %d: %v", i+1, err)+`"}`, http.StatusBadRequest)
			return
		}
		sequences = append(sequences, seq)
	}

	stats, err := starmsa.SetStats(sequences)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// AlignmentStatsRequest represents a request with an existing gapped
// alignment.
type AlignmentStatsRequest struct {
	IDs  []string `json:"ids,omitempty"`
	Rows []string `json:"rows"`
}

// AlignmentStatsResponse represents per-column statistics for an
// existing alignment.
type AlignmentStatsResponse struct {
	Stats        AlignmentStatsOutput `json:"stats"`
	Conservation string               `json:"conservation"`
}

// AlignmentStatsHandler handles alignment statistics requests.
func AlignmentStatsHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignmentStatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	ids := req.IDs
	if len(ids) == 0 {
		ids = make([]string, len(req.Rows))
		for i := range ids {
			ids[i] = fmt.Sprintf("seq%d", i+1)
		}
	}

	aln, err := starmsa.NewAlignment(ids, req.Rows)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	st := starmsa.AlignmentStatistics(aln)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AlignmentStatsResponse{
		Stats: AlignmentStatsOutput{
			Rows:              st.Rows,
			Columns:           st.Columns,
			IdenticalColumns:  st.IdenticalColumns,
			MismatchedColumns: st.MismatchedColumns,
			GappedColumns:     st.GappedColumns,
			Identity:          st.Identity,
		},
		Conservation: starmsa.ConservationLine(aln),
	})
}
