package sequence

import (
	"fmt"
	"strings"
)

// SequenceError is the base error type for sequence operations.
type SequenceError interface {
	error
	IsSequenceError()
}

// EmptySequenceError is returned when a sequence is empty.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "sequence must have at least one base"
}

func (e *EmptySequenceError) IsSequenceError() {}

// InvalidBaseError is returned when an invalid base is encountered.
type InvalidBaseError struct {
	Position int
	Found    rune
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base '%c' at position %d", e.Found, e.Position)
}

func (e *InvalidBaseError) IsSequenceError() {}

// InvalidLengthError is returned when sequence length is invalid.
type InvalidLengthError struct {
	Expected int
	Actual   int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("expected length %d, got %d", e.Expected, e.Actual)
}

func (e *InvalidLengthError) IsSequenceError() {}

// ValidateDNA validates that a string contains only valid DNA bases.
func ValidateDNA(bases string) error {
	for i, b := range bases {
		if !ValidDNABases[b] {
			return &InvalidBaseError{Position: i, Found: b}
		}
	}
	return nil
}

// IsValidDNABase checks if a character is a valid DNA base.
func IsValidDNABase(c rune) bool {
	return ValidDNABases[c]
}

// Record is a raw sequence record prior to validation, as read from
// an input file.
type Record struct {
	ID    string
	Bases string
}

// CheckFailure describes one record that failed validation.
type CheckFailure struct {
	Index int
	ID    string
	Err   error
}

// CheckReport summarizes batch validation of raw records.
type CheckReport struct {
	Total    int
	Valid    int
	Failures []CheckFailure
}

// Invalid returns the number of records that failed validation.
func (r *CheckReport) Invalid() int {
	return len(r.Failures)
}

// AllValid reports whether every record passed validation.
func (r *CheckReport) AllValid() bool {
	return len(r.Failures) == 0
}

func (r *CheckReport) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "checked %d sequences: %d valid, %d invalid\n", r.Total, r.Valid, r.Invalid())
	for _, f := range r.Failures {
		name := f.ID
		if name == "" {
			name = fmt.Sprintf("record %d", f.Index+1)
		}
		fmt.Fprintf(&sb, "  %s: %v\n", name, f.Err)
	}
	return sb.String()
}

// CheckAll validates every record and reports all failures rather
// than stopping at the first invalid one.
func CheckAll(records []Record) *CheckReport {
	report := &CheckReport{Total: len(records)}

	for i, rec := range records {
		if _, err := New(rec.Bases); err != nil {
			report.Failures = append(report.Failures, CheckFailure{Index: i, ID: rec.ID, Err: err})
			continue
		}
		report.Valid++
	}

	return report
}
