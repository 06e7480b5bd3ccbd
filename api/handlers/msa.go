package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/centerstar-bio/starmsa/pkg/starmsa"
)

// MSARequest represents a multiple alignment request.
type MSARequest struct {
	Sequences []SequenceInput `json:"sequences"`
	Scoring   *ScoringInput   `json:"scoring,omitempty"`
	Workers   int             `json:"workers,omitempty"`
}

// buildSequences converts request inputs into validated sequences.
func buildSequences(inputs []SequenceInput) ([]*starmsa.Sequence, error) {
	seqs := make([]*starmsa.Sequence, len(inputs))
	for i, in := range inputs {
		var seq *starmsa.Sequence
		var err error
		if in.ID != "" {
			seq, err = starmsa.NewSequenceWithID(in.Bases, in.ID)
		} else {
			seq, err = starmsa.NewSequence(in.Bases)
		}
		if err != nil {
			return nil, fmt.Errorf("sequence %d: %w", i+1, err)
		}
		seqs[i] = seq
	}
	return seqs, nil
}

// writeMSAError maps an alignment error to a status code. Merge
// faults are server-side defects; everything else is bad input.
func writeMSAError(w http.ResponseWriter, err error) {
	var fault *starmsa.ConsistencyFault
	status := http.StatusBadRequest
	if errors.As(err, &fault) {
		status = http.StatusInternalServerError
	}
	http.Error(w, `{"error": "`+err.Error()+`"}`, status)
}

// AlignmentStatsOutput represents per-column alignment statistics.
type AlignmentStatsOutput struct {
	Rows              int     `json:"rows"`
	Columns           int     `json:"columns"`
	IdenticalColumns  int     `json:"identical_columns"`
	MismatchedColumns int     `json:"mismatched_columns"`
	GappedColumns     int     `json:"gapped_columns"`
	Identity          float64 `json:"identity"`
}

// MSAResponse represents the response for a multiple alignment.
type MSAResponse struct {
	IDs          []string             `json:"ids"`
	Rows         []string             `json:"rows"`
	Center       int                  `json:"center"`
	Conservation string               `json:"conservation"`
	Stats        AlignmentStatsOutput `json:"stats"`
}

// MSARunHandler handles multiple alignment requests.
func MSARunHandler(w http.ResponseWriter, r *http.Request) {
	var req MSARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seqs, err := buildSequences(req.Sequences)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	aln, st, err := starmsa.Run(r.Context(), seqs, req.Scoring.scheme(), req.Workers)
	if err != nil {
		writeMSAError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MSAResponse{
		IDs:          aln.IDs,
		Rows:         aln.Rows,
		Center:       aln.Center,
		Conservation: starmsa.ConservationLine(aln),
		Stats: AlignmentStatsOutput{
			Rows:              st.Rows,
			Columns:           st.Columns,
			IdenticalColumns:  st.IdenticalColumns,
			MismatchedColumns: st.MismatchedColumns,
			GappedColumns:     st.GappedColumns,
			Identity:          st.Identity,
		},
	})
}

// MatrixResponse represents the response for a score matrix.
type MatrixResponse struct {
	Scores  [][]int `json:"scores"`
	RowSums []int   `json:"row_sums"`
	Center  int     `json:"center"`
}

// ScoreMatrixHandler handles pairwise score matrix requests.
func ScoreMatrixHandler(w http.ResponseWriter, r *http.Request) {
	var req MSARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seqs, err := buildSequences(req.Sequences)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	m, err := starmsa.BuildScoreMatrix(r.Context(), seqs, req.Scoring.scheme(), req.Workers)
	if err != nil {
		writeMSAError(w, err)
		return
	}

	sums := make([]int, m.Size())
	for i := range sums {
		sums[i] = m.RowSum(i)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MatrixResponse{
		Scores:  m.Scores(),
		RowSums: sums,
		Center:  starmsa.SelectCenter(m),
	})
}
