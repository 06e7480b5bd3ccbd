package alignment

import (
	"fmt"
	"strings"
)

// PairwiseAlignment represents the result of a global alignment
// between two sequences. The aligned strings always have equal
// length, and stripping gaps from either one reproduces the
// corresponding input sequence.
type PairwiseAlignment struct {
	AlignedSeq1 string
	AlignedSeq2 string
	Score       int
	Identity    float64
}

// NewPairwiseAlignment creates a new alignment result.
func NewPairwiseAlignment(aligned1, aligned2 string, score int) (*PairwiseAlignment, error) {
	if len(aligned1) != len(aligned2) {
		return nil, fmt.Errorf("aligned sequences must have equal length")
	}

	a := &PairwiseAlignment{
		AlignedSeq1: aligned1,
		AlignedSeq2: aligned2,
		Score:       score,
	}
	a.Identity = a.calculateIdentity()
	return a, nil
}

// calculateIdentity calculates the fraction of matching columns.
func (a *PairwiseAlignment) calculateIdentity() float64 {
	if len(a.AlignedSeq1) == 0 {
		return 0.0
	}
	return float64(a.MatchCount()) / float64(len(a.AlignedSeq1))
}

// Length returns the length of the alignment.
func (a *PairwiseAlignment) Length() int {
	return len(a.AlignedSeq1)
}

// MatchCount returns the number of matching columns.
func (a *PairwiseAlignment) MatchCount() int {
	count := 0
	for i := 0; i < len(a.AlignedSeq1); i++ {
		if c := a.AlignedSeq1[i]; c != '-' && c == a.AlignedSeq2[i] {
			count++
		}
	}
	return count
}

// MismatchCount returns the number of columns holding two distinct
// bases.
func (a *PairwiseAlignment) MismatchCount() int {
	count := 0
	for i := 0; i < len(a.AlignedSeq1); i++ {
		c1, c2 := a.AlignedSeq1[i], a.AlignedSeq2[i]
		if c1 != c2 && c1 != '-' && c2 != '-' {
			count++
		}
	}
	return count
}

// GapsSeq1 returns the number of gaps in sequence 1.
func (a *PairwiseAlignment) GapsSeq1() int {
	return strings.Count(a.AlignedSeq1, "-")
}

// GapsSeq2 returns the number of gaps in sequence 2.
func (a *PairwiseAlignment) GapsSeq2() int {
	return strings.Count(a.AlignedSeq2, "-")
}

// TotalGaps returns the total number of gaps.
func (a *PairwiseAlignment) TotalGaps() int {
	return a.GapsSeq1() + a.GapsSeq2()
}

// Ungapped1 returns the first aligned sequence with gaps removed.
func (a *PairwiseAlignment) Ungapped1() string {
	return strings.ReplaceAll(a.AlignedSeq1, "-", "")
}

// Ungapped2 returns the second aligned sequence with gaps removed.
func (a *PairwiseAlignment) Ungapped2() string {
	return strings.ReplaceAll(a.AlignedSeq2, "-", "")
}

// Swapped returns a copy of the alignment with the two rows
// exchanged. The score is unchanged since scoring is symmetric.
func (a *PairwiseAlignment) Swapped() *PairwiseAlignment {
	return &PairwiseAlignment{
		AlignedSeq1: a.AlignedSeq2,
		AlignedSeq2: a.AlignedSeq1,
		Score:       a.Score,
		Identity:    a.Identity,
	}
}

// cigarOp classifies one alignment column.
func cigarOp(c1, c2 byte) byte {
	switch {
	case c1 == '-':
		return 'I'
	case c2 == '-':
		return 'D'
	case c1 == c2:
		return 'M'
	default:
		return 'X'
	}
}

// ToCIGAR generates a CIGAR string representation, grouping runs of
// equal operations.
func (a *PairwiseAlignment) ToCIGAR() string {
	var cigar strings.Builder

	n := len(a.AlignedSeq1)
	for i := 0; i < n; {
		op := cigarOp(a.AlignedSeq1[i], a.AlignedSeq2[i])
		j := i + 1
		for j < n && cigarOp(a.AlignedSeq1[j], a.AlignedSeq2[j]) == op {
			j++
		}
		fmt.Fprintf(&cigar, "%d%c", j-i, op)
		i = j
	}

	return cigar.String()
}

// Format returns a formatted string representation of the alignment.
func (a *PairwiseAlignment) Format() string {
	marks := make([]byte, len(a.AlignedSeq1))
	for i := range marks {
		c1, c2 := a.AlignedSeq1[i], a.AlignedSeq2[i]
		switch {
		case c1 == '-' || c2 == '-':
			marks[i] = ' '
		case c1 == c2:
			marks[i] = '|'
		default:
			marks[i] = '.'
		}
	}

	return fmt.Sprintf("Seq1: %s\n      %s\nSeq2: %s\nScore: %d\nIdentity: %.1f%%\nCIGAR: %s",
		a.AlignedSeq1, string(marks), a.AlignedSeq2,
		a.Score, a.Identity*100, a.ToCIGAR())
}

func (a *PairwiseAlignment) String() string {
	return fmt.Sprintf("PairwiseAlignment { score: %d, identity: %.1f%%, length: %d }",
		a.Score, a.Identity*100, a.Length())
}

// reverse reverses an aligned string. Aligned strings hold only
// single-byte symbols, so bytes can be swapped directly.
func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
