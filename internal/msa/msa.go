package msa

import (
	"context"
	"fmt"
	"strings"

	"github.com/centerstar-bio/starmsa/internal/alignment"
	"github.com/centerstar-bio/starmsa/internal/sequence"
)

// MultipleAlignment is a block of gapped rows of equal length, one
// per input sequence, kept in original input order. Stripping the
// gaps from row i reproduces input sequence i exactly.
type MultipleAlignment struct {
	IDs  []string
	Rows []string

	// Center is the input index of the star center, or -1 when the
	// alignment was not produced by Align (e.g. read from a file).
	Center int
}

// NewMultipleAlignment builds an alignment from pre-aligned rows,
// validating that the block is well formed: at least two rows, equal
// lengths, and only nucleotide or gap characters.
func NewMultipleAlignment(ids, rows []string) (*MultipleAlignment, error) {
	if len(rows) < 2 {
		return nil, &InsufficientInputError{Got: len(rows)}
	}
	if len(ids) != len(rows) {
		return nil, fmt.Errorf("got %d ids for %d rows", len(ids), len(rows))
	}

	width := len(rows[0])
	if width == 0 {
		return nil, &sequence.EmptySequenceError{}
	}
	for _, row := range rows {
		if len(row) != width {
			return nil, &sequence.InvalidLengthError{Expected: width, Actual: len(row)}
		}
		for i, c := range row {
			if c != '-' && !sequence.IsValidDNABase(c) {
				return nil, &sequence.InvalidBaseError{Position: i, Found: c}
			}
		}
	}

	return &MultipleAlignment{IDs: ids, Rows: rows, Center: -1}, nil
}

// Size returns the number of rows.
func (m *MultipleAlignment) Size() int {
	return len(m.Rows)
}

// Columns returns the alignment length.
func (m *MultipleAlignment) Columns() int {
	if len(m.Rows) == 0 {
		return 0
	}
	return len(m.Rows[0])
}

// Ungapped returns row i with gap characters removed, which is the
// original input sequence.
func (m *MultipleAlignment) Ungapped(i int) string {
	return strings.ReplaceAll(m.Rows[i], "-", "")
}

func (m *MultipleAlignment) String() string {
	return fmt.Sprintf("MultipleAlignment { sequences: %d, columns: %d, center: %d }",
		m.Size(), m.Columns(), m.Center)
}

// Align runs the full center star pipeline: score matrix, center
// selection, and star merge. Sequences keep their input order in the
// result. workers bounds the concurrency of the matrix phase only;
// the merge itself is sequential. A nil scoring scheme uses the
// defaults.
func Align(ctx context.Context, seqs []*sequence.Sequence, scoring *alignment.ScoringScheme, workers int) (*MultipleAlignment, error) {
	matrix, err := BuildScoreMatrix(ctx, seqs, scoring, workers)
	if err != nil {
		return nil, err
	}

	center := SelectCenter(matrix)

	rows, err := mergeStar(ctx, seqs, center, matrix)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(seqs))
	for i, s := range seqs {
		if s.ID != "" {
			ids[i] = s.ID
		} else {
			ids[i] = fmt.Sprintf("seq%d", i+1)
		}
	}

	return &MultipleAlignment{IDs: ids, Rows: rows, Center: center}, nil
}
