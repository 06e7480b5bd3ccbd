package msa

import (
	"context"
	"testing"

	"github.com/centerstar-bio/starmsa/internal/alignment"
	"github.com/centerstar-bio/starmsa/internal/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSequences(t testing.TB, bases ...string) []*sequence.Sequence {
	t.Helper()
	seqs := make([]*sequence.Sequence, len(bases))
	for i, b := range bases {
		s, err := sequence.New(b)
		require.NoError(t, err)
		seqs[i] = s
	}
	return seqs
}

func TestBuildScoreMatrix(t *testing.T) {
	seqs := mustSequences(t, "ACGT", "AGT", "ACT")

	m, err := BuildScoreMatrix(context.Background(), seqs, nil, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Size())

	// Every pair aligns with score 1 under the default scheme.
	assert.Equal(t, 1, m.At(0, 1))
	assert.Equal(t, 1, m.At(0, 2))
	assert.Equal(t, 1, m.At(1, 2))

	// Symmetric with a zero diagonal.
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, m.At(i, i))
		for j := 0; j < 3; j++ {
			assert.Equal(t, m.At(i, j), m.At(j, i))
		}
	}

	assert.Equal(t, 2, m.RowSum(0))
	assert.Equal(t, 2, m.RowSum(1))
	assert.Equal(t, 2, m.RowSum(2))
}

func TestBuildScoreMatrixRetainsPairs(t *testing.T) {
	seqs := mustSequences(t, "ACGT", "AGT")

	m, err := BuildScoreMatrix(context.Background(), seqs, nil, 1)
	require.NoError(t, err)

	pair := m.Pair(0, 1)
	require.NotNil(t, pair)
	assert.Equal(t, "ACGT", pair.AlignedSeq1)
	assert.Equal(t, "A-GT", pair.AlignedSeq2)
	assert.Equal(t, 1, pair.Score)

	// Reversed lookup swaps the rows but keeps the score.
	rev := m.Pair(1, 0)
	require.NotNil(t, rev)
	assert.Equal(t, "A-GT", rev.AlignedSeq1)
	assert.Equal(t, "ACGT", rev.AlignedSeq2)
	assert.Equal(t, 1, rev.Score)

	assert.Nil(t, m.Pair(1, 1))
}

func TestBuildScoreMatrixWorkerCounts(t *testing.T) {
	seqs := mustSequences(t, "ACGTACGT", "TTGCA", "ACCGT", "GGGTACA", "ACGT")

	serial, err := BuildScoreMatrix(context.Background(), seqs, nil, 1)
	require.NoError(t, err)

	for _, workers := range []int{0, 2, 8} {
		m, err := BuildScoreMatrix(context.Background(), seqs, nil, workers)
		require.NoError(t, err)
		assert.Equal(t, serial.Scores(), m.Scores(), "workers=%d must not change the matrix", workers)
	}
}

func TestBuildScoreMatrixInsufficientInput(t *testing.T) {
	_, err := BuildScoreMatrix(context.Background(), nil, nil, 1)
	require.Error(t, err)
	assert.IsType(t, &InsufficientInputError{}, err)

	seqs := mustSequences(t, "ACGT")
	_, err = BuildScoreMatrix(context.Background(), seqs, nil, 1)
	require.Error(t, err)

	var insuff *InsufficientInputError
	require.ErrorAs(t, err, &insuff)
	assert.Equal(t, 1, insuff.Got)
}

func TestBuildScoreMatrixEmptySequence(t *testing.T) {
	seqs := mustSequences(t, "ACGT", "AGT")
	seqs = append(seqs, &sequence.Sequence{Bases: ""})

	_, err := BuildScoreMatrix(context.Background(), seqs, nil, 4)
	require.Error(t, err)
	assert.IsType(t, &sequence.EmptySequenceError{}, err)
}

func TestBuildScoreMatrixCancelled(t *testing.T) {
	seqs := mustSequences(t, "ACGT", "AGT", "ACT", "GGTT")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildScoreMatrix(ctx, seqs, nil, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSelectCenter(t *testing.T) {
	t.Run("clear winner", func(t *testing.T) {
		// AAAA scores -2 against both others; ACGT and ACGG score 2
		// against each other, so their rows win.
		seqs := mustSequences(t, "AAAA", "ACGT", "ACGG")

		m, err := BuildScoreMatrix(context.Background(), seqs, nil, 1)
		require.NoError(t, err)

		assert.Equal(t, -4, m.RowSum(0))
		assert.Equal(t, 0, m.RowSum(1))
		assert.Equal(t, 0, m.RowSum(2))
		assert.Equal(t, 1, SelectCenter(m))
	})

	t.Run("tie picks lowest index", func(t *testing.T) {
		seqs := mustSequences(t, "ACGT", "AGT", "ACT")

		m, err := BuildScoreMatrix(context.Background(), seqs, nil, 1)
		require.NoError(t, err)

		assert.Equal(t, 0, SelectCenter(m))
	})

	t.Run("identical sequences pick first", func(t *testing.T) {
		seqs := mustSequences(t, "ATGC", "ATGC", "ATGC")

		m, err := BuildScoreMatrix(context.Background(), seqs, nil, 1)
		require.NoError(t, err)

		assert.Equal(t, 0, SelectCenter(m))
	})
}

func TestMergePair(t *testing.T) {
	t.Run("no gaps", func(t *testing.T) {
		center, others, newRow, err := mergePair("ACGT", nil, "ACGT", "A-GT")
		require.NoError(t, err)
		assert.Equal(t, "ACGT", center)
		assert.Empty(t, others)
		assert.Equal(t, "A-GT", newRow)
	})

	t.Run("new sequence inserts a column", func(t *testing.T) {
		center, others, newRow, err := mergePair("ACGT", []string{"A-GT"}, "AC-GT", "ACAGT")
		require.NoError(t, err)
		assert.Equal(t, "AC-GT", center)
		require.Len(t, others, 1)
		assert.Equal(t, "A--GT", others[0])
		assert.Equal(t, "ACAGT", newRow)
	})

	t.Run("existing gap column padded into new row", func(t *testing.T) {
		center, others, newRow, err := mergePair("A-CG", []string{"ATCG"}, "ACG", "ACG")
		require.NoError(t, err)
		assert.Equal(t, "A-CG", center)
		require.Len(t, others, 1)
		assert.Equal(t, "ATCG", others[0])
		assert.Equal(t, "A-CG", newRow)
	})

	t.Run("center disagreement faults", func(t *testing.T) {
		_, _, _, err := mergePair("ACGT", nil, "AGCT", "AGCT")
		require.Error(t, err)

		var fault *ConsistencyFault
		require.ErrorAs(t, err, &fault)
		assert.Equal(t, 1, fault.Column)
		assert.Equal(t, byte('C'), fault.Merged)
		assert.Equal(t, byte('G'), fault.New)
	})
}

func TestMergePairIdempotent(t *testing.T) {
	center, others, newRow, err := mergePair("ACGT", []string{"A-GT"}, "AC-GT", "ACAGT")
	require.NoError(t, err)

	// Merging the same pair again must not widen the block or move
	// anything.
	merged := append(others, newRow)
	center2, others2, newRow2, err := mergePair(center, merged, "AC-GT", "ACAGT")
	require.NoError(t, err)

	assert.Equal(t, center, center2)
	assert.Equal(t, merged, others2)
	assert.Equal(t, newRow, newRow2)
}

func TestMergeStarConsistencyFault(t *testing.T) {
	seqs := mustSequences(t, "AC", "GT", "AG")

	// Hand-build a matrix whose second pair disagrees with the first
	// on the center row.
	m := &ScoreMatrix{
		scores: [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
		pairs:  make([][]*alignment.PairwiseAlignment, 3),
	}
	for i := range m.pairs {
		m.pairs[i] = make([]*alignment.PairwiseAlignment, 3)
	}
	var err error
	m.pairs[0][1], err = alignment.NewPairwiseAlignment("AC", "GT", 0)
	require.NoError(t, err)
	m.pairs[0][2], err = alignment.NewPairwiseAlignment("GC", "AG", 0)
	require.NoError(t, err)

	_, err = mergeStar(context.Background(), seqs, 0, m)
	require.Error(t, err)
	assert.IsType(t, &ConsistencyFault{}, err)
}

func TestAlignIdenticalSequences(t *testing.T) {
	seqs := mustSequences(t, "ATGC", "ATGC", "ATGC")

	result, err := Align(context.Background(), seqs, nil, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Size())
	assert.Equal(t, 4, result.Columns())
	assert.Equal(t, 0, result.Center)
	for i := 0; i < 3; i++ {
		assert.Equal(t, "ATGC", result.Rows[i])
	}
}

func TestAlignThreeSequences(t *testing.T) {
	seqs := mustSequences(t, "ACGT", "AGT", "ACT")

	result, err := Align(context.Background(), seqs, nil, 1)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Center)
	assert.Equal(t, []string{"ACGT", "A-GT", "AC-T"}, result.Rows)
	assert.Equal(t, []string{"seq1", "seq2", "seq3"}, result.IDs)
}

func TestAlignKeepsInputOrder(t *testing.T) {
	seqs := mustSequences(t, "AAAA", "ACGT", "ACGG")
	seqs[0].ID = "first"
	seqs[1].ID = "second"
	seqs[2].ID = "third"

	result, err := Align(context.Background(), seqs, nil, 1)
	require.NoError(t, err)

	// The center is sequence 1, but rows stay in input order.
	assert.Equal(t, 1, result.Center)
	assert.Equal(t, []string{"first", "second", "third"}, result.IDs)
	for i, s := range seqs {
		assert.Equal(t, s.Bases, result.Ungapped(i))
	}
}

func TestAlignUngapRoundTrip(t *testing.T) {
	inputs := []string{"ACGTACGGT", "AGTACG", "CGTACGGT", "ACGTTT", "ACG"}
	seqs := mustSequences(t, inputs...)

	result, err := Align(context.Background(), seqs, nil, 2)
	require.NoError(t, err)

	assert.Equal(t, len(inputs), result.Size())
	width := result.Columns()
	for i, row := range result.Rows {
		assert.Len(t, row, width)
		assert.Equal(t, inputs[i], result.Ungapped(i))
	}
	assert.GreaterOrEqual(t, result.Center, 0)
	assert.Less(t, result.Center, len(inputs))
}

func TestAlignDeterministic(t *testing.T) {
	seqs := mustSequences(t, "ACGTACGGT", "AGTACG", "CGTACGGT", "ACGTTT")

	first, err := Align(context.Background(), seqs, nil, 4)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Align(context.Background(), seqs, nil, 4)
		require.NoError(t, err)
		assert.Equal(t, first.Rows, again.Rows)
		assert.Equal(t, first.Center, again.Center)
	}
}

func TestAlignTwoSequences(t *testing.T) {
	seqs := mustSequences(t, "ACGT", "AGT")

	result, err := Align(context.Background(), seqs, nil, 1)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Center)
	assert.Equal(t, []string{"ACGT", "A-GT"}, result.Rows)
}

func TestAlignErrors(t *testing.T) {
	t.Run("no sequences", func(t *testing.T) {
		_, err := Align(context.Background(), nil, nil, 1)
		require.Error(t, err)
		assert.IsType(t, &InsufficientInputError{}, err)
	})

	t.Run("single sequence", func(t *testing.T) {
		seqs := mustSequences(t, "ACGT")
		_, err := Align(context.Background(), seqs, nil, 1)
		require.Error(t, err)
		assert.IsType(t, &InsufficientInputError{}, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		seqs := mustSequences(t, "ACGT", "AGT", "ACT")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Align(ctx, seqs, nil, 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewMultipleAlignment(t *testing.T) {
	tests := []struct {
		name    string
		ids     []string
		rows    []string
		wantErr bool
	}{
		{
			name: "valid block",
			ids:  []string{"a", "b"},
			rows: []string{"AC-GT", "ACAGT"},
		},
		{
			name:    "single row",
			ids:     []string{"a"},
			rows:    []string{"ACGT"},
			wantErr: true,
		},
		{
			name:    "unequal lengths",
			ids:     []string{"a", "b"},
			rows:    []string{"ACGT", "ACG"},
			wantErr: true,
		},
		{
			name:    "invalid character",
			ids:     []string{"a", "b"},
			rows:    []string{"ACGT", "ACXT"},
			wantErr: true,
		},
		{
			name:    "id count mismatch",
			ids:     []string{"a"},
			rows:    []string{"ACGT", "ACGT"},
			wantErr: true,
		},
		{
			name:    "empty rows",
			ids:     []string{"a", "b"},
			rows:    []string{"", ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMultipleAlignment(tt.ids, tt.rows)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, -1, m.Center)
			assert.Equal(t, len(tt.rows), m.Size())
			assert.Equal(t, len(tt.rows[0]), m.Columns())
		})
	}
}

func TestMultipleAlignmentUngapped(t *testing.T) {
	m, err := NewMultipleAlignment([]string{"a", "b"}, []string{"AC-GT", "A-AGT"})
	require.NoError(t, err)

	assert.Equal(t, "ACGT", m.Ungapped(0))
	assert.Equal(t, "AAGT", m.Ungapped(1))
}

func BenchmarkAlign(b *testing.B) {
	bases := []string{}
	unit := []string{"ACGTTGCA", "ACGATGCA", "ACTTGCA", "AGGTTGCA", "CGTTGCAA", "ACGTTGC"}
	for i := 0; i < 6; i++ {
		s := ""
		for j := 0; j < 12; j++ {
			s += unit[(i+j)%len(unit)]
		}
		bases = append(bases, s)
	}
	seqs := mustSequences(b, bases...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Align(context.Background(), seqs, nil, 4)
	}
}
