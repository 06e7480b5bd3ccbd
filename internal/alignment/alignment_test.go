package alignment

import (
	"testing"

	"github.com/centerstar-bio/starmsa/internal/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoringScheme(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		s := Default()
		assert.Equal(t, 1, s.Match)
		assert.Equal(t, -1, s.Mismatch)
		assert.Equal(t, -2, s.Gap)
	})

	t.Run("Score match", func(t *testing.T) {
		s := Default()
		assert.Equal(t, 1, s.Score('A', 'A'))
	})

	t.Run("Score mismatch", func(t *testing.T) {
		s := Default()
		assert.Equal(t, -1, s.Score('A', 'T'))
	})

	t.Run("custom values unconstrained", func(t *testing.T) {
		s := NewScoringScheme(5, 0, 1)
		assert.Equal(t, 5, s.Match)
		assert.Equal(t, 0, s.Mismatch)
		assert.Equal(t, 1, s.GapPenalty())
	})
}

func TestNeedlemanWunsch(t *testing.T) {
	tests := []struct {
		name         string
		seq1         string
		seq2         string
		wantAligned1 string
		wantAligned2 string
		wantScore    int
	}{
		{
			name:         "identical",
			seq1:         "ATGC",
			seq2:         "ATGC",
			wantAligned1: "ATGC",
			wantAligned2: "ATGC",
			wantScore:    4,
		},
		{
			name:         "deletion in second",
			seq1:         "ACGT",
			seq2:         "AGT",
			wantAligned1: "ACGT",
			wantAligned2: "A-GT",
			wantScore:    1,
		},
		{
			name:         "insertion in second",
			seq1:         "AGT",
			seq2:         "ACGT",
			wantAligned1: "A-GT",
			wantAligned2: "ACGT",
			wantScore:    1,
		},
		{
			name:         "completely different",
			seq1:         "AAAA",
			seq2:         "TTTT",
			wantAligned1: "AAAA",
			wantAligned2: "TTTT",
			wantScore:    -4,
		},
		{
			name:         "single base mismatch",
			seq1:         "A",
			seq2:         "T",
			wantAligned1: "A",
			wantAligned2: "T",
			wantScore:    -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq1, err := sequence.New(tt.seq1)
			require.NoError(t, err)

			seq2, err := sequence.New(tt.seq2)
			require.NoError(t, err)

			alignment, err := NeedlemanWunsch(seq1, seq2, nil)
			require.NoError(t, err)

			assert.Equal(t, tt.wantAligned1, alignment.AlignedSeq1)
			assert.Equal(t, tt.wantAligned2, alignment.AlignedSeq2)
			assert.Equal(t, tt.wantScore, alignment.Score)
			assert.Equal(t, len(alignment.AlignedSeq1), len(alignment.AlignedSeq2))
		})
	}
}

func TestNeedlemanWunschSelfAlignment(t *testing.T) {
	seq, _ := sequence.New("ACGTACGTAC")

	alignment, err := NeedlemanWunsch(seq, seq, nil)
	require.NoError(t, err)

	// Aligning a sequence with itself yields all matches and no gaps.
	assert.Equal(t, seq.Len()*1, alignment.Score)
	assert.Equal(t, 1.0, alignment.Identity)
	assert.Equal(t, 0, alignment.TotalGaps())
	assert.Equal(t, seq.Len(), alignment.MatchCount())
}

func TestNeedlemanWunschScoreSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"ACGT", "AGT"},
		{"ATGCATGC", "TGCA"},
		{"AAAA", "TTTT"},
		{"ACGTN", "ACGT"},
	}

	for _, p := range pairs {
		seq1, _ := sequence.New(p[0])
		seq2, _ := sequence.New(p[1])

		fwd, err := NeedlemanWunsch(seq1, seq2, nil)
		require.NoError(t, err)
		rev, err := NeedlemanWunsch(seq2, seq1, nil)
		require.NoError(t, err)

		assert.Equal(t, fwd.Score, rev.Score, "score must not depend on argument order for %q/%q", p[0], p[1])
	}
}

func TestNeedlemanWunschTieBreak(t *testing.T) {
	// At the tie cell the diagonal move must win over Up, which
	// places the gap at the start of the shorter sequence.
	seq1, _ := sequence.New("AA")
	seq2, _ := sequence.New("A")

	alignment, err := NeedlemanWunsch(seq1, seq2, nil)
	require.NoError(t, err)

	assert.Equal(t, "AA", alignment.AlignedSeq1)
	assert.Equal(t, "-A", alignment.AlignedSeq2)
	assert.Equal(t, -1, alignment.Score)
}

func TestNeedlemanWunschDeterministic(t *testing.T) {
	seq1, _ := sequence.New("ATGCATTA")
	seq2, _ := sequence.New("TGCATA")

	first, err := NeedlemanWunsch(seq1, seq2, nil)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := NeedlemanWunsch(seq1, seq2, nil)
		require.NoError(t, err)
		assert.Equal(t, first.AlignedSeq1, again.AlignedSeq1)
		assert.Equal(t, first.AlignedSeq2, again.AlignedSeq2)
		assert.Equal(t, first.Score, again.Score)
	}
}

func TestNeedlemanWunschUngapRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"ACGT", "AGT"},
		{"ATGCATGC", "GCAT"},
		{"A", "TTTTT"},
		{"ACGTACGT", "ACGTACGT"},
	}

	for _, p := range pairs {
		seq1, _ := sequence.New(p[0])
		seq2, _ := sequence.New(p[1])

		alignment, err := NeedlemanWunsch(seq1, seq2, nil)
		require.NoError(t, err)

		assert.Equal(t, seq1.Bases, alignment.Ungapped1())
		assert.Equal(t, seq2.Bases, alignment.Ungapped2())
	}
}

func TestNeedlemanWunschEmpty(t *testing.T) {
	valid, _ := sequence.New("ACGT")
	empty := &sequence.Sequence{Bases: ""}

	_, err := NeedlemanWunsch(valid, empty, nil)
	require.Error(t, err)
	assert.IsType(t, &sequence.EmptySequenceError{}, err)

	_, err = NeedlemanWunsch(empty, valid, nil)
	require.Error(t, err)

	_, err = NeedlemanWunsch(valid, nil, nil)
	require.Error(t, err)
}

func TestNeedlemanWunschCustomScheme(t *testing.T) {
	seq1, _ := sequence.New("ACGT")
	seq2, _ := sequence.New("ACGT")

	scheme := NewScoringScheme(3, -2, -4)
	alignment, err := NeedlemanWunsch(seq1, seq2, scheme)
	require.NoError(t, err)

	assert.Equal(t, 12, alignment.Score)
}

func TestAlignmentIdentity(t *testing.T) {
	tests := []struct {
		name     string
		aligned1 string
		aligned2 string
		want     float64
	}{
		{"perfect match", "ATGC", "ATGC", 1.0},
		{"50% match", "ATGC", "ATTT", 0.5},
		{"no match", "AAAA", "TTTT", 0.0},
		{"with gaps", "AT-GC", "ATGGC", 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewPairwiseAlignment(tt.aligned1, tt.aligned2, 0)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, a.Identity, 0.0001)
		})
	}
}

func TestAlignmentCIGAR(t *testing.T) {
	tests := []struct {
		name     string
		aligned1 string
		aligned2 string
		want     string
	}{
		{"all match", "ATGC", "ATGC", "4M"},
		{"with mismatch", "ATGC", "ATGA", "3M1X"},
		{"with gap seq1", "AT-GC", "ATGGC", "2M1I2M"},
		{"with gap seq2", "ATGGC", "AT-GC", "2M1D2M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewPairwiseAlignment(tt.aligned1, tt.aligned2, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.ToCIGAR())
		})
	}
}

func TestAlignmentLengthMismatch(t *testing.T) {
	_, err := NewPairwiseAlignment("ATGC", "ATG", 0)
	require.Error(t, err)
}

func TestAlignmentSwapped(t *testing.T) {
	a, err := NewPairwiseAlignment("ACGT", "A-GT", 1)
	require.NoError(t, err)

	s := a.Swapped()
	assert.Equal(t, "A-GT", s.AlignedSeq1)
	assert.Equal(t, "ACGT", s.AlignedSeq2)
	assert.Equal(t, a.Score, s.Score)
	assert.Equal(t, a.Identity, s.Identity)
}

func TestAlignmentGapCounts(t *testing.T) {
	a, err := NewPairwiseAlignment("AC-GT-", "-CAGTA", 0)
	require.NoError(t, err)

	assert.Equal(t, 2, a.GapsSeq1())
	assert.Equal(t, 1, a.GapsSeq2())
	assert.Equal(t, 3, a.TotalGaps())
}

func TestScoreOnly(t *testing.T) {
	pairs := [][2]string{
		{"ATGCATGCATGC", "ATGCATGCATGC"},
		{"ACGT", "AGT"},
		{"AAAA", "TTTT"},
		{"ATGCATTA", "TGCATA"},
	}

	for _, p := range pairs {
		seq1, _ := sequence.New(p[0])
		seq2, _ := sequence.New(p[1])

		score, err := ScoreOnly(seq1, seq2, nil)
		require.NoError(t, err)

		alignment, err := NeedlemanWunsch(seq1, seq2, nil)
		require.NoError(t, err)
		assert.Equal(t, alignment.Score, score, "rolling-row score must match full table for %q/%q", p[0], p[1])
	}
}

func BenchmarkNeedlemanWunsch(b *testing.B) {
	s1 := ""
	s2 := ""
	for i := 0; i < 250; i++ {
		s1 += "ACGT"
		s2 += "AGCT"
	}
	seq1, _ := sequence.New(s1)
	seq2, _ := sequence.New(s2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = NeedlemanWunsch(seq1, seq2, Default())
	}
}

func BenchmarkScoreOnly(b *testing.B) {
	s1 := ""
	s2 := ""
	for i := 0; i < 250; i++ {
		s1 += "ACGT"
		s2 += "AGCT"
	}
	seq1, _ := sequence.New(s1)
	seq2, _ := sequence.New(s2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ScoreOnly(seq1, seq2, Default())
	}
}
