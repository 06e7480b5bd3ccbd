package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/centerstar-bio/starmsa/internal/fasta"
	"github.com/centerstar-bio/starmsa/internal/sequence"
)

// openInput returns a reader for path. "-" or an empty path selects
// stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	return f, nil
}

// readSequences loads sequences from a FASTA file, or from
// whitespace-separated plain text when text is set.
func readSequences(path string, text bool) ([]*sequence.Sequence, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	if text {
		return fasta.ParseText(in)
	}
	return fasta.Parse(in)
}
