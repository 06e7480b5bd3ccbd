// Package starmsa provides a high-level API for multiple sequence alignment.
//
// This package exposes the core StarMSA functionality through a simple,
// easy-to-use API for aligning sets of DNA sequences.
//
// Example usage:
//
//	seqs, err := starmsa.ReadFASTA("input.fasta")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	aln, stats, err := starmsa.Run(context.Background(), seqs, nil, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("identity: %.2f%%\n", stats.Identity)
package starmsa

import (
	"context"
	"fmt"
	"io"

	"github.com/centerstar-bio/starmsa/internal/alignment"
	"github.com/centerstar-bio/starmsa/internal/fasta"
	"github.com/centerstar-bio/starmsa/internal/msa"
	"github.com/centerstar-bio/starmsa/internal/sequence"
	"github.com/centerstar-bio/starmsa/internal/stats"
)

// Re-export types for convenience
type (
	Sequence          = sequence.Sequence
	Record            = sequence.Record
	CheckReport       = sequence.CheckReport
	PairwiseAlignment = alignment.PairwiseAlignment
	ScoringScheme     = alignment.ScoringScheme
	ScoreMatrix       = msa.ScoreMatrix
	MultipleAlignment = msa.MultipleAlignment
	AlignmentStats    = stats.AlignmentStats
	SequenceSetStats  = stats.SequenceSetStats

	InsufficientInputError = msa.InsufficientInputError
	ConsistencyFault       = msa.ConsistencyFault
)

// NewSequence creates a new DNA sequence.
func NewSequence(bases string) (*Sequence, error) {
	return sequence.New(bases)
}

// NewSequenceWithID creates a new sequence with an identifier.
func NewSequenceWithID(bases, id string) (*Sequence, error) {
	return sequence.WithID(bases, id)
}

// DefaultScoring returns the default alignment scoring scheme.
func DefaultScoring() *ScoringScheme {
	return alignment.Default()
}

// NewScoring returns a scoring scheme with custom values.
func NewScoring(match, mismatch, gap int) *ScoringScheme {
	return alignment.NewScoringScheme(match, mismatch, gap)
}

// AlignPair performs global alignment between two sequences.
func AlignPair(seq1, seq2 *Sequence, scoring *ScoringScheme) (*PairwiseAlignment, error) {
	return alignment.NeedlemanWunsch(seq1, seq2, scoring)
}

// AlignmentScore computes the global alignment score between two
// sequences without building the aligned strings.
func AlignmentScore(seq1, seq2 *Sequence, scoring *ScoringScheme) (int, error) {
	return alignment.ScoreOnly(seq1, seq2, scoring)
}

// BuildScoreMatrix computes pairwise alignment scores for every pair
// of sequences, using up to workers goroutines.
func BuildScoreMatrix(ctx context.Context, seqs []*Sequence, scoring *ScoringScheme, workers int) (*ScoreMatrix, error) {
	return msa.BuildScoreMatrix(ctx, seqs, scoring, workers)
}

// SelectCenter returns the index of the center sequence for a score
// matrix.
func SelectCenter(m *ScoreMatrix) int {
	return msa.SelectCenter(m)
}

// Align computes a center star multiple alignment of the sequences.
func Align(ctx context.Context, seqs []*Sequence, scoring *ScoringScheme, workers int) (*MultipleAlignment, error) {
	return msa.Align(ctx, seqs, scoring, workers)
}

// NewAlignment builds a MultipleAlignment from already-aligned rows,
// validating shape and symbols.
func NewAlignment(ids, rows []string) (*MultipleAlignment, error) {
	return msa.NewMultipleAlignment(ids, rows)
}

// Run computes a multiple alignment and its column statistics in one
// call.
func Run(ctx context.Context, seqs []*Sequence, scoring *ScoringScheme, workers int) (*MultipleAlignment, *AlignmentStats, error) {
	aln, err := msa.Align(ctx, seqs, scoring, workers)
	if err != nil {
		return nil, nil, err
	}
	return aln, stats.FromAlignment(aln), nil
}

// AlignmentStatistics calculates per-column statistics for an
// alignment.
func AlignmentStatistics(aln *MultipleAlignment) *AlignmentStats {
	return stats.FromAlignment(aln)
}

// ConservationLine returns a marker line with '*' under fully
// conserved alignment columns.
func ConservationLine(aln *MultipleAlignment) string {
	return stats.ConservationLine(aln)
}

// SequenceStats calculates statistics for a sequence.
func SequenceStats(seq *Sequence) *stats.SequenceStats {
	return stats.FromSequence(seq)
}

// SetStats calculates statistics for multiple sequences.
func SetStats(sequences []*Sequence) (*SequenceSetStats, error) {
	return stats.FromSequences(sequences)
}

// CheckAll validates a batch of raw records and reports every failure.
func CheckAll(records []Record) *CheckReport {
	return sequence.CheckAll(records)
}

// ReadFASTA reads sequences from a FASTA file.
func ReadFASTA(filename string) ([]*Sequence, error) {
	return fasta.ReadFile(filename)
}

// ParseFASTA parses FASTA format from a reader.
func ParseFASTA(r io.Reader) ([]*Sequence, error) {
	return fasta.Parse(r)
}

// WriteFASTA writes sequences to a FASTA file.
func WriteFASTA(filename string, sequences []*Sequence) error {
	return fasta.WriteFile(filename, sequences)
}

// ReadAlignment reads a gapped FASTA alignment from a file.
func ReadAlignment(filename string) (*MultipleAlignment, error) {
	return fasta.ReadAlignedFile(filename)
}

// WriteAlignment writes an alignment as gapped FASTA.
func WriteAlignment(w io.Writer, aln *MultipleAlignment) error {
	return fasta.WriteAligned(w, aln, 0)
}

// Version returns the StarMSA version.
func Version() string {
	return "1.0.0"
}

// Info returns information about StarMSA.
func Info() string {
	return fmt.Sprintf(`StarMSA v%s - Multiple Sequence Alignment Library

A Go implementation of center star multiple sequence alignment.

Features:
  - DNA sequence handling with validation
  - Needleman-Wunsch global pairwise alignment
  - Concurrent all-pairs score matrix construction
  - Center star multiple alignment
  - Per-column alignment statistics
  - FASTA parsing and gapped alignment output

For more information, see: https://github.com/centerstar-bio/starmsa
`, Version())
}
