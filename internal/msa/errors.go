package msa

import "fmt"

// MSAError is the base error type for multiple alignment operations.
type MSAError interface {
	error
	IsMSAError()
}

// InsufficientInputError is returned when fewer than two sequences
// are supplied.
type InsufficientInputError struct {
	Got int
}

func (e *InsufficientInputError) Error() string {
	return fmt.Sprintf("multiple alignment requires at least 2 sequences, got %d", e.Got)
}

func (e *InsufficientInputError) IsMSAError() {}

// ConsistencyFault is returned when two pairwise alignments disagree
// on a non-gap center symbol during merging. This indicates a defect
// in the aligner rather than bad input, so the run is aborted.
type ConsistencyFault struct {
	Column int
	Merged byte
	New    byte
}

func (e *ConsistencyFault) Error() string {
	return fmt.Sprintf("center rows disagree at column %d: '%c' vs '%c'", e.Column, e.Merged, e.New)
}

func (e *ConsistencyFault) IsMSAError() {}
