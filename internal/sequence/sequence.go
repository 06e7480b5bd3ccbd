// Package sequence provides validated DNA sequence types.
//
// Sequences are normalized to uppercase and checked against the
// nucleotide alphabet (A, C, G, T, N) at construction time; once
// built they are treated as immutable.
package sequence

import (
	"fmt"
	"strings"
)

// ValidDNABases is the accepted nucleotide alphabet. N marks an
// ambiguous base call.
var ValidDNABases = map[rune]bool{'A': true, 'C': true, 'G': true, 'T': true, 'N': true}

// Sequence represents a validated DNA sequence.
type Sequence struct {
	Bases       string
	ID          string
	Description string
}

// New creates a new DNA sequence with validation. Input is
// uppercased before checking, so "acgt" and "ACGT" are equivalent.
func New(bases string) (*Sequence, error) {
	normalized := strings.ToUpper(bases)

	if len(normalized) == 0 {
		return nil, &EmptySequenceError{}
	}

	if err := ValidateDNA(normalized); err != nil {
		return nil, err
	}

	return &Sequence{Bases: normalized}, nil
}

// WithID creates a new sequence with an identifier.
func WithID(bases, id string) (*Sequence, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ID cannot be empty")
	}

	seq, err := New(bases)
	if err != nil {
		return nil, err
	}

	seq.ID = id
	return seq, nil
}

// WithMetadata creates a new sequence with an identifier and a
// free-form description, as parsed from a FASTA header.
func WithMetadata(bases, id, description string) (*Sequence, error) {
	seq, err := New(bases)
	if err != nil {
		return nil, err
	}

	seq.ID = id
	seq.Description = description
	return seq, nil
}

// Len returns the number of bases.
func (s *Sequence) Len() int {
	return len(s.Bases)
}

// IsValid reports whether all bases are within the nucleotide
// alphabet.
func (s *Sequence) IsValid() bool {
	return ValidateDNA(s.Bases) == nil
}

// HasAmbiguous reports whether the sequence contains any N bases.
func (s *Sequence) HasAmbiguous() bool {
	return strings.Contains(s.Bases, "N")
}

// CountAmbiguous returns the number of N bases.
func (s *Sequence) CountAmbiguous() int {
	return strings.Count(s.Bases, "N")
}

// GCContent returns the proportion of G and C bases.
func (s *Sequence) GCContent() float64 {
	if len(s.Bases) == 0 {
		return 0.0
	}

	gc := strings.Count(s.Bases, "G") + strings.Count(s.Bases, "C")
	return float64(gc) / float64(len(s.Bases))
}

// BaseCounts holds per-base counts for a sequence.
type BaseCounts struct {
	A int
	C int
	G int
	T int
	N int
}

// BaseCounts returns the count of each base type.
func (s *Sequence) BaseCounts() BaseCounts {
	var counts BaseCounts

	for i := 0; i < len(s.Bases); i++ {
		switch s.Bases[i] {
		case 'A':
			counts.A++
		case 'C':
			counts.C++
		case 'G':
			counts.G++
		case 'T':
			counts.T++
		case 'N':
			counts.N++
		}
	}

	return counts
}

// Total returns the total count of all bases.
func (bc BaseCounts) Total() int {
	return bc.A + bc.C + bc.G + bc.T + bc.N
}

// ToFASTA renders the sequence as a FASTA record with 80-column
// line wrapping. Sequences without an ID get the header ">sequence".
func (s *Sequence) ToFASTA() string {
	var sb strings.Builder

	sb.WriteByte('>')
	if s.ID == "" {
		sb.WriteString("sequence")
	} else {
		sb.WriteString(s.ID)
		if s.Description != "" {
			sb.WriteByte(' ')
			sb.WriteString(s.Description)
		}
	}
	sb.WriteByte('\n')

	for start := 0; start < len(s.Bases); start += 80 {
		end := start + 80
		if end > len(s.Bases) {
			end = len(s.Bases)
		}
		sb.WriteString(s.Bases[start:end])
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String returns a string representation of the sequence.
func (s *Sequence) String() string {
	if s.ID != "" {
		return fmt.Sprintf(">%s\n%s", s.ID, s.Bases)
	}
	return s.Bases
}

// Equal checks equality of bases with another sequence.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	return s.Bases == other.Bases
}
