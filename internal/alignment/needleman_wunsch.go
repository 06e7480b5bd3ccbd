package alignment

import (
	"strings"

	"github.com/centerstar-bio/starmsa/internal/sequence"
)

// NeedlemanWunsch performs global alignment using the Needleman-Wunsch
// algorithm with a linear gap penalty.
//
// The full (m+1)x(n+1) table is filled row by row; cell (i,j) holds
// the best score for aligning the first i bases of seq1 against the
// first j bases of seq2. On ties the diagonal move wins over Up, and
// Up wins over Left, so results are deterministic for a given input
// order. Passing a nil scheme uses Default.
func NeedlemanWunsch(seq1, seq2 *sequence.Sequence, scoring *ScoringScheme) (*PairwiseAlignment, error) {
	if scoring == nil {
		scoring = Default()
	}

	if seq1 == nil || seq2 == nil || seq1.Len() == 0 || seq2.Len() == 0 {
		return nil, &sequence.EmptySequenceError{}
	}

	m, n := seq1.Len(), seq2.Len()
	s1, s2 := seq1.Bases, seq2.Bases

	H := make([][]int, m+1)
	traceback := make([][]AlignDirection, m+1)
	for i := range H {
		H[i] = make([]int, n+1)
		traceback[i] = make([]AlignDirection, n+1)
	}

	// First row and column initialized with gap penalties
	for i := 0; i <= m; i++ {
		H[i][0] = i * scoring.GapPenalty()
		if i > 0 {
			traceback[i][0] = Up
		}
	}
	for j := 0; j <= n; j++ {
		H[0][j] = j * scoring.GapPenalty()
		if j > 0 {
			traceback[0][j] = Left
		}
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			matchScore := scoring.Score(rune(s1[i-1]), rune(s2[j-1]))

			diag := H[i-1][j-1] + matchScore
			up := H[i-1][j] + scoring.GapPenalty()
			left := H[i][j-1] + scoring.GapPenalty()

			// Strict comparisons keep the Diagonal > Up > Left
			// preference on ties.
			best := diag
			direction := Diagonal

			if up > best {
				best = up
				direction = Up
			}
			if left > best {
				best = left
				direction = Left
			}

			H[i][j] = best
			traceback[i][j] = direction
		}
	}

	aligned1, aligned2 := tracebackGlobal(s1, s2, traceback, m, n)

	return NewPairwiseAlignment(aligned1, aligned2, H[m][n])
}

// tracebackGlobal walks the direction matrix from the bottom-right
// corner back to the origin.
func tracebackGlobal(seq1, seq2 string, traceback [][]AlignDirection, m, n int) (string, string) {
	var aligned1, aligned2 strings.Builder
	i, j := m, n

	for i > 0 || j > 0 {
		if i == 0 {
			aligned1.WriteByte('-')
			aligned2.WriteByte(seq2[j-1])
			j--
		} else if j == 0 {
			aligned1.WriteByte(seq1[i-1])
			aligned2.WriteByte('-')
			i--
		} else {
			switch traceback[i][j] {
			case Diagonal:
				aligned1.WriteByte(seq1[i-1])
				aligned2.WriteByte(seq2[j-1])
				i--
				j--
			case Up:
				aligned1.WriteByte(seq1[i-1])
				aligned2.WriteByte('-')
				i--
			case Left:
				aligned1.WriteByte('-')
				aligned2.WriteByte(seq2[j-1])
				j--
			}
		}
	}

	a1 := aligned1.String()
	a2 := aligned2.String()
	return reverse(a1), reverse(a2)
}

// ScoreOnly calculates the global alignment score without traceback.
//
// Uses O(n) space instead of O(m*n) by only keeping two rows.
func ScoreOnly(seq1, seq2 *sequence.Sequence, scoring *ScoringScheme) (int, error) {
	if scoring == nil {
		scoring = Default()
	}

	if seq1 == nil || seq2 == nil || seq1.Len() == 0 || seq2.Len() == 0 {
		return 0, &sequence.EmptySequenceError{}
	}

	m, n := seq1.Len(), seq2.Len()
	s1, s2 := seq1.Bases, seq2.Bases

	prevRow := make([]int, n+1)
	currRow := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prevRow[j] = j * scoring.GapPenalty()
	}

	for i := 1; i <= m; i++ {
		currRow[0] = i * scoring.GapPenalty()

		for j := 1; j <= n; j++ {
			matchScore := scoring.Score(rune(s1[i-1]), rune(s2[j-1]))

			diag := prevRow[j-1] + matchScore
			up := prevRow[j] + scoring.GapPenalty()
			left := currRow[j-1] + scoring.GapPenalty()

			currRow[j] = max(diag, up, left)
		}

		prevRow, currRow = currRow, prevRow
	}

	return prevRow[n], nil
}
