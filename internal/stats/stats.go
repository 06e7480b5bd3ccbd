// Package stats provides statistical summaries for sequences and
// multiple alignments.
package stats

import (
	"fmt"
	"sort"

	"github.com/centerstar-bio/starmsa/internal/sequence"
)

// SequenceStats describes the composition of a single sequence.
type SequenceStats struct {
	Length       int
	GCContent    float64
	ATContent    float64
	ACount       int
	CCount       int
	GCount       int
	TCount       int
	NCount       int
	HasAmbiguous bool
}

// FromSequence summarizes the base composition of one sequence.
func FromSequence(seq *sequence.Sequence) *SequenceStats {
	counts := seq.BaseCounts()
	length := seq.Len()

	s := &SequenceStats{
		Length:       length,
		ACount:       counts.A,
		CCount:       counts.C,
		GCount:       counts.G,
		TCount:       counts.T,
		NCount:       counts.N,
		HasAmbiguous: counts.N > 0,
	}
	if length > 0 {
		s.GCContent = float64(counts.G+counts.C) / float64(length)
		s.ATContent = float64(counts.A+counts.T) / float64(length)
	}
	return s
}

func (s *SequenceStats) String() string {
	return fmt.Sprintf(`SequenceStats {
  length: %d
  GC content: %.1f%%
  AT content: %.1f%%
  A: %d, C: %d, G: %d, T: %d, N: %d
}`, s.Length, s.GCContent*100, s.ATContent*100,
		s.ACount, s.CCount, s.GCount, s.TCount, s.NCount)
}

// SequenceSetStats aggregates length and composition figures over a
// whole sequence set.
type SequenceSetStats struct {
	Count          int
	TotalBases     int
	MinLength      int
	MaxLength      int
	MeanLength     float64
	MedianLength   int
	MeanGCContent  float64
	N50            int
	TotalAmbiguous int
}

// FromSequences aggregates statistics over a non-empty sequence set.
func FromSequences(sequences []*sequence.Sequence) (*SequenceSetStats, error) {
	count := len(sequences)
	if count == 0 {
		return nil, fmt.Errorf("no sequences to summarize")
	}

	lengths := make([]int, count)
	totalBases := 0
	gcSum := 0.0
	ambiguous := 0
	for i, seq := range sequences {
		lengths[i] = seq.Len()
		totalBases += seq.Len()
		gcSum += seq.GCContent()
		ambiguous += seq.CountAmbiguous()
	}
	sort.Ints(lengths)

	// Median over the sorted lengths.
	mid := count / 2
	median := lengths[mid]
	if count%2 == 0 {
		median = (lengths[mid-1] + lengths[mid]) / 2
	}

	// N50: walk the lengths from longest down until half the total
	// base count is covered.
	n50 := lengths[count-1]
	covered := 0
	for i := count - 1; i >= 0; i-- {
		covered += lengths[i]
		if covered >= totalBases/2 {
			n50 = lengths[i]
			break
		}
	}

	return &SequenceSetStats{
		Count:          count,
		TotalBases:     totalBases,
		MinLength:      lengths[0],
		MaxLength:      lengths[count-1],
		MeanLength:     float64(totalBases) / float64(count),
		MedianLength:   median,
		MeanGCContent:  gcSum / float64(count),
		N50:            n50,
		TotalAmbiguous: ambiguous,
	}, nil
}

func (s *SequenceSetStats) String() string {
	return fmt.Sprintf(`SequenceSetStats {
  count: %d
  total_bases: %d
  length range: %d - %d
  mean length: %.1f
  median length: %d
  mean GC: %.1f%%
  N50: %d
  ambiguous bases: %d
}`, s.Count, s.TotalBases, s.MinLength, s.MaxLength,
		s.MeanLength, s.MedianLength, s.MeanGCContent*100, s.N50, s.TotalAmbiguous)
}
