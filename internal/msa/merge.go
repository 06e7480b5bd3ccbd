package msa

import (
	"context"
	"strings"

	"github.com/centerstar-bio/starmsa/internal/sequence"
)

// mergeStar folds the center's pairwise alignments into one gapped
// block. Non-center sequences are processed in ascending input order,
// one at a time; a single goroutine owns all row buffers, so no
// synchronization is needed. Returns the finished rows in original
// input order.
func mergeStar(ctx context.Context, seqs []*sequence.Sequence, center int, matrix *ScoreMatrix) ([]string, error) {
	centerRow := seqs[center].Bases
	others := make([]string, 0, len(seqs)-1)

	for k := 0; k < len(seqs); k++ {
		if k == center {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pair := matrix.Pair(center, k)

		merged, mergedOthers, newRow, err := mergePair(centerRow, others, pair.AlignedSeq1, pair.AlignedSeq2)
		if err != nil {
			return nil, err
		}

		centerRow = merged
		others = append(mergedOthers, newRow)
	}

	// Reassemble rows in original input order.
	rows := make([]string, len(seqs))
	oi := 0
	for k := range seqs {
		if k == center {
			rows[k] = centerRow
			continue
		}
		rows[k] = others[oi]
		oi++
	}

	return rows, nil
}

// mergePair reconciles one pairwise alignment with the merged block
// built so far. mc is the current merged center row and nc the center
// row of the incoming pair; both strip to the same center sequence,
// they differ only in gap placement. The two rows are walked with a
// pair of cursors:
//
//   - equal symbols are one shared column,
//   - a gap only in mc means an earlier sequence inserted there, so
//     the new row receives a gap and existing rows keep their column,
//   - a gap only in nc means the new sequence inserts there, so a
//     fresh gap column is pushed into the center and every merged row.
//
// Widened rows are built into new buffers; existing rows are never
// shifted in place. Two different non-gap symbols mean the pairwise
// alignments disagree on the center itself, which is reported as a
// ConsistencyFault.
func mergePair(mc string, others []string, nc, newSeq string) (string, []string, string, error) {
	var outCenter, outNew strings.Builder
	outOthers := make([]strings.Builder, len(others))

	i, j := 0, 0
	for i < len(mc) || j < len(nc) {
		switch {
		case i >= len(mc):
			// Only the incoming pair has columns left; they must all
			// be insertions relative to the center.
			if nc[j] != '-' {
				return "", nil, "", &ConsistencyFault{Column: i, Merged: '-', New: nc[j]}
			}
			outCenter.WriteByte('-')
			for k := range outOthers {
				outOthers[k].WriteByte('-')
			}
			outNew.WriteByte(newSeq[j])
			j++

		case j >= len(nc):
			// Only the merged block has columns left; they must all
			// be gap columns from earlier merges.
			if mc[i] != '-' {
				return "", nil, "", &ConsistencyFault{Column: i, Merged: mc[i], New: '-'}
			}
			outCenter.WriteByte('-')
			for k := range outOthers {
				outOthers[k].WriteByte(others[k][i])
			}
			outNew.WriteByte('-')
			i++

		case mc[i] == nc[j]:
			outCenter.WriteByte(mc[i])
			for k := range outOthers {
				outOthers[k].WriteByte(others[k][i])
			}
			outNew.WriteByte(newSeq[j])
			i++
			j++

		case mc[i] == '-':
			// Gap column from an earlier merge that the incoming
			// pair does not know about.
			outCenter.WriteByte('-')
			for k := range outOthers {
				outOthers[k].WriteByte(others[k][i])
			}
			outNew.WriteByte('-')
			i++

		case nc[j] == '-':
			// The new sequence inserts a column the merged block has
			// not seen yet.
			outCenter.WriteByte('-')
			for k := range outOthers {
				outOthers[k].WriteByte('-')
			}
			outNew.WriteByte(newSeq[j])
			j++

		default:
			return "", nil, "", &ConsistencyFault{Column: i, Merged: mc[i], New: nc[j]}
		}
	}

	merged := make([]string, len(others))
	for k := range outOthers {
		merged[k] = outOthers[k].String()
	}

	return outCenter.String(), merged, outNew.String(), nil
}
