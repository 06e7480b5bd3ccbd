// Package alignment provides pairwise global sequence alignment.
//
// This package implements the Needleman-Wunsch algorithm with a linear
// gap penalty, which serves as the pairwise engine for multiple
// alignment construction.
package alignment

import "fmt"

// AlignDirection represents the traceback direction in the alignment matrix.
type AlignDirection int

const (
	// Stop marks an unfilled matrix cell
	Stop AlignDirection = iota
	// Diagonal represents a match or mismatch
	Diagonal
	// Up represents a gap in sequence 2
	Up
	// Left represents a gap in sequence 1
	Left
)

// ScoringScheme holds the three parameters of linear-gap alignment
// scoring. Values carry no sign constraints; callers that want
// unusual schemes (positive gaps, negative matches) get them.
type ScoringScheme struct {
	Match    int
	Mismatch int
	Gap      int
}

// NewScoringScheme creates a scoring scheme from explicit parameters.
func NewScoringScheme(match, mismatch, gap int) *ScoringScheme {
	return &ScoringScheme{
		Match:    match,
		Mismatch: mismatch,
		Gap:      gap,
	}
}

// Default returns the standard nucleotide scheme: match +1,
// mismatch -1, gap -2.
func Default() *ScoringScheme {
	return &ScoringScheme{
		Match:    1,
		Mismatch: -1,
		Gap:      -2,
	}
}

// Score returns the score for comparing two bases.
func (s *ScoringScheme) Score(base1, base2 rune) int {
	if base1 == base2 {
		return s.Match
	}
	return s.Mismatch
}

// GapPenalty returns the linear gap penalty.
func (s *ScoringScheme) GapPenalty() int {
	return s.Gap
}

// String returns a string representation of the scoring scheme.
func (s *ScoringScheme) String() string {
	return fmt.Sprintf("ScoringScheme { match: %d, mismatch: %d, gap: %d }",
		s.Match, s.Mismatch, s.Gap)
}
