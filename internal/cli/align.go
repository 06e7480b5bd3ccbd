package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/centerstar-bio/starmsa/internal/config"
	"github.com/centerstar-bio/starmsa/pkg/starmsa"
)

var alignFile string
var alignScoreOnly bool

// alignCmd represents the align command
var alignCmd = &cobra.Command{
	Use:   "align [seq1] [seq2]",
	Short: "Globally align two sequences",
	Long: `Globally align two DNA sequences with the Needleman-Wunsch algorithm.

Sequences are passed as arguments, or read from a two-record FASTA file
with --file. Scoring is adjusted with the --match, --mismatch and --gap
flags.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New()

		var seq1, seq2 *starmsa.Sequence
		var err error

		switch {
		case len(args) == 2:
			if seq1, err = starmsa.NewSequenceWithID(args[0], "seq1"); err != nil {
				return fmt.Errorf("sequence 1: %w", err)
			}
			if seq2, err = starmsa.NewSequenceWithID(args[1], "seq2"); err != nil {
				return fmt.Errorf("sequence 2: %w", err)
			}
		case alignFile != "":
			seqs, err := readSequences(alignFile, false)
			if err != nil {
				return err
			}
			if len(seqs) != 2 {
				return fmt.Errorf("expected exactly 2 sequences in %s, got %d", alignFile, len(seqs))
			}
			seq1, seq2 = seqs[0], seqs[1]
		default:
			return fmt.Errorf("pass two sequences as arguments or a FASTA file with --file")
		}

		if alignScoreOnly {
			score, err := starmsa.AlignmentScore(seq1, seq2, cfg.Scheme())
			if err != nil {
				return err
			}
			fmt.Printf("Score: %d\n", score)
			return nil
		}

		aln, err := starmsa.AlignPair(seq1, seq2, cfg.Scheme())
		if err != nil {
			return err
		}

		fmt.Println(aln.Format())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(alignCmd)

	alignCmd.Flags().StringVarP(&alignFile, "file", "f", "", "FASTA file with exactly two sequences")
	alignCmd.Flags().BoolVar(&alignScoreOnly, "score-only", false, "print only the alignment score")
}
