// Package msa builds multiple sequence alignments with the center
// star heuristic.
//
// The pipeline has three phases: an all-pairs global alignment score
// matrix, center selection by maximum row sum, and a sequential merge
// of the center's pairwise alignments into one gapped block.
package msa

import (
	"context"
	"sync"

	"github.com/centerstar-bio/starmsa/internal/alignment"
	"github.com/centerstar-bio/starmsa/internal/sequence"
)

// ScoreMatrix holds the symmetric matrix of pairwise global alignment
// scores for a sequence set, together with the alignments that
// produced them. The alignments are retained so the merge phase can
// reuse the center's pairs instead of aligning those sequences again.
type ScoreMatrix struct {
	scores [][]int
	pairs  [][]*alignment.PairwiseAlignment
}

// BuildScoreMatrix aligns every unordered pair of sequences and
// records the scores. Pairs are fanned out to a worker pool; the
// matrix itself is assembled by a single collector, so the result is
// identical regardless of worker count. workers < 1 is treated as 1.
func BuildScoreMatrix(ctx context.Context, seqs []*sequence.Sequence, scoring *alignment.ScoringScheme, workers int) (*ScoreMatrix, error) {
	n := len(seqs)
	if n < 2 {
		return nil, &InsufficientInputError{Got: n}
	}
	for _, s := range seqs {
		if s == nil || s.Len() == 0 {
			return nil, &sequence.EmptySequenceError{}
		}
	}
	if workers < 1 {
		workers = 1
	}

	m := &ScoreMatrix{
		scores: make([][]int, n),
		pairs:  make([][]*alignment.PairwiseAlignment, n),
	}
	for i := range m.scores {
		m.scores[i] = make([]int, n)
		m.pairs[i] = make([]*alignment.PairwiseAlignment, n)
	}

	type job struct {
		i, j int
	}
	type result struct {
		i, j int
		aln  *alignment.PairwiseAlignment
		err  error
	}
	jobs := make(chan job, workers*2)
	results := make(chan result, workers*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case jb, ok := <-jobs:
					if !ok {
						return
					}
					aln, err := alignment.NeedlemanWunsch(seqs[jb.i], seqs[jb.j], scoring)

					select {
					case results <- result{i: jb.i, j: jb.j, aln: aln, err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for res := range results {
			if res.err != nil {
				if cerr == nil {
					cerr = res.err
				}
				continue
			}
			m.scores[res.i][res.j] = res.aln.Score
			m.scores[res.j][res.i] = res.aln.Score
			m.pairs[res.i][res.j] = res.aln
		}
	}()

	// Feed work
feed:
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			select {
			case <-ctx.Done():
				break feed
			case jobs <- job{i: i, j: j}:
			}
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if cerr != nil {
		return nil, cerr
	}
	return m, nil
}

// Size returns the number of sequences the matrix covers.
func (m *ScoreMatrix) Size() int {
	return len(m.scores)
}

// At returns the alignment score between sequences i and j. The
// diagonal is zero.
func (m *ScoreMatrix) At(i, j int) int {
	return m.scores[i][j]
}

// RowSum returns the sum of row i, the total alignment score of
// sequence i against all others.
func (m *ScoreMatrix) RowSum(i int) int {
	sum := 0
	for j := range m.scores[i] {
		sum += m.scores[i][j]
	}
	return sum
}

// Scores returns the full symmetric score matrix.
func (m *ScoreMatrix) Scores() [][]int {
	return m.scores
}

// Pair returns the stored alignment between sequences i and j,
// oriented so that AlignedSeq1 corresponds to sequence i. Returns
// nil for the diagonal.
func (m *ScoreMatrix) Pair(i, j int) *alignment.PairwiseAlignment {
	if i == j {
		return nil
	}
	if i < j {
		return m.pairs[i][j]
	}
	return m.pairs[j][i].Swapped()
}
