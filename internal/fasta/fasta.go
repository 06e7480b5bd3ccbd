// Package fasta reads and writes FASTA files, including gapped
// alignment blocks and plain sequence text.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/centerstar-bio/starmsa/internal/msa"
	"github.com/centerstar-bio/starmsa/internal/sequence"
)

// Parse parses FASTA format from a reader. Records must contain only
// nucleotide bases; headers without bases are skipped.
func Parse(r io.Reader) ([]*sequence.Sequence, error) {
	sequences := make([]*sequence.Sequence, 0)
	scanner := bufio.NewScanner(r)

	var currentID, currentDesc string
	var currentBases strings.Builder

	flushSequence := func() error {
		if currentBases.Len() > 0 {
			seq, err := sequence.WithMetadata(currentBases.String(), currentID, currentDesc)
			if err != nil {
				return err
			}
			sequences = append(sequences, seq)
			currentBases.Reset()
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			if err := flushSequence(); err != nil {
				return nil, err
			}

			header := line[1:]
			parts := strings.SplitN(header, " ", 2)
			currentID = parts[0]
			if len(parts) > 1 {
				currentDesc = parts[1]
			} else {
				currentDesc = ""
			}
		} else {
			currentBases.WriteString(line)
		}
	}

	if err := flushSequence(); err != nil {
		return nil, err
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return sequences, nil
}

// ReadFile reads sequences from a FASTA file.
func ReadFile(path string) ([]*sequence.Sequence, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Write writes sequences in FASTA format.
func Write(w io.Writer, sequences []*sequence.Sequence) error {
	for _, seq := range sequences {
		if _, err := io.WriteString(w, seq.ToFASTA()); err != nil {
			return fmt.Errorf("writing sequence: %w", err)
		}
	}
	return nil
}

// WriteFile writes sequences to a FASTA file.
func WriteFile(path string, sequences []*sequence.Sequence) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	return Write(file, sequences)
}

// ParseText parses plain text with whitespace-separated sequences,
// assigning generated identifiers seq1, seq2, ... in input order.
func ParseText(r io.Reader) ([]*sequence.Sequence, error) {
	sequences := make([]*sequence.Sequence, 0)
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		seq, err := sequence.WithID(scanner.Text(), fmt.Sprintf("seq%d", len(sequences)+1))
		if err != nil {
			return nil, fmt.Errorf("sequence %d: %w", len(sequences)+1, err)
		}
		sequences = append(sequences, seq)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return sequences, nil
}

// ScanRecords collects raw records without validating their bases,
// for batch validation reporting. Input starting with '>' is treated
// as FASTA; anything else as one sequence per line. Unlike Parse,
// headers with empty bodies are kept so they can be reported.
func ScanRecords(r io.Reader) ([]sequence.Record, error) {
	records := make([]sequence.Record, 0)
	scanner := bufio.NewScanner(r)

	fastaMode := false
	started := false
	var current sequence.Record
	inRecord := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		if !started {
			started = true
			fastaMode = line[0] == '>'
		}

		if !fastaMode {
			records = append(records, sequence.Record{
				ID:    fmt.Sprintf("seq%d", len(records)+1),
				Bases: line,
			})
			continue
		}

		if line[0] == '>' {
			if inRecord {
				records = append(records, current)
			}
			parts := strings.SplitN(line[1:], " ", 2)
			current = sequence.Record{ID: parts[0]}
			inRecord = true
		} else if inRecord {
			current.Bases += line
		}
	}
	if inRecord {
		records = append(records, current)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return records, nil
}

// ParseAligned parses a gapped FASTA alignment block. Rows may
// contain '-' characters and must all have the same length.
func ParseAligned(r io.Reader) (*msa.MultipleAlignment, error) {
	ids := make([]string, 0)
	rows := make([]string, 0)
	scanner := bufio.NewScanner(r)

	var currentRow strings.Builder
	inRecord := false

	flushRow := func() {
		if inRecord {
			rows = append(rows, currentRow.String())
			currentRow.Reset()
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			flushRow()
			parts := strings.SplitN(line[1:], " ", 2)
			ids = append(ids, parts[0])
			inRecord = true
		} else if inRecord {
			currentRow.WriteString(strings.ToUpper(line))
		}
	}
	flushRow()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return msa.NewMultipleAlignment(ids, rows)
}

// ReadAlignedFile reads a gapped FASTA alignment from a file.
func ReadAlignedFile(path string) (*msa.MultipleAlignment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ParseAligned(file)
}

// WriteAligned writes an alignment block as gapped FASTA, wrapping
// rows at width columns. width <= 0 falls back to 80.
func WriteAligned(w io.Writer, aln *msa.MultipleAlignment, width int) error {
	if width <= 0 {
		width = 80
	}

	for i, row := range aln.Rows {
		if _, err := fmt.Fprintf(w, ">%s\n", aln.IDs[i]); err != nil {
			return fmt.Errorf("writing alignment: %w", err)
		}
		for start := 0; start < len(row); start += width {
			end := start + width
			if end > len(row) {
				end = len(row)
			}
			if _, err := fmt.Fprintln(w, row[start:end]); err != nil {
				return fmt.Errorf("writing alignment: %w", err)
			}
		}
	}

	return nil
}

// WriteAlignedFile writes an alignment block to a FASTA file.
func WriteAlignedFile(path string, aln *msa.MultipleAlignment, width int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	return WriteAligned(file, aln, width)
}
