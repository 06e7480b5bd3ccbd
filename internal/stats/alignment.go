package stats

import (
	"fmt"
	"strings"

	"github.com/centerstar-bio/starmsa/internal/msa"
)

// AlignmentStats summarizes a multiple alignment column by column.
//
// A column is identical when every row carries the same non-gap base,
// mismatched when at least two distinct non-gap bases occur, and
// gapped when at least one row carries a gap. Gapped and mismatched
// are independent, so a column can count toward both; an identical
// column counts toward neither.
type AlignmentStats struct {
	Rows              int
	Columns           int
	IdenticalColumns  int
	MismatchedColumns int
	GappedColumns     int
	Identity          float64
}

// classifyColumn inspects one column of the alignment block.
func classifyColumn(rows []string, col int) (hasGap, mismatch, identical bool) {
	var first byte
	hasBase := false

	for _, row := range rows {
		c := row[col]
		if c == '-' {
			hasGap = true
			continue
		}
		if !hasBase {
			first = c
			hasBase = true
		} else if c != first {
			mismatch = true
		}
	}

	identical = hasBase && !hasGap && !mismatch
	return hasGap, mismatch, identical
}

// FromAlignment calculates column statistics for a multiple alignment.
func FromAlignment(aln *msa.MultipleAlignment) *AlignmentStats {
	s := &AlignmentStats{
		Rows:    aln.Size(),
		Columns: aln.Columns(),
	}

	for col := 0; col < s.Columns; col++ {
		hasGap, mismatch, identical := classifyColumn(aln.Rows, col)
		if hasGap {
			s.GappedColumns++
		}
		if mismatch {
			s.MismatchedColumns++
		}
		if identical {
			s.IdenticalColumns++
		}
	}

	if s.Columns > 0 {
		s.Identity = float64(s.IdenticalColumns) / float64(s.Columns) * 100
	}

	return s
}

// ConservationLine returns a clustal-style annotation line for the
// alignment: '*' under fully conserved columns, a space elsewhere.
func ConservationLine(aln *msa.MultipleAlignment) string {
	var sb strings.Builder
	for col := 0; col < aln.Columns(); col++ {
		_, _, identical := classifyColumn(aln.Rows, col)
		if identical {
			sb.WriteByte('*')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func (s *AlignmentStats) String() string {
	return fmt.Sprintf(`AlignmentStats {
  sequences: %d
  columns: %d
  identical columns: %d
  mismatched columns: %d
  gapped columns: %d
  identity: %.1f%%
}`, s.Rows, s.Columns, s.IdenticalColumns, s.MismatchedColumns,
		s.GappedColumns, s.Identity)
}
