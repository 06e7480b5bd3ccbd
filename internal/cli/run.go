package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/centerstar-bio/starmsa/internal/config"
	"github.com/centerstar-bio/starmsa/internal/fasta"
	"github.com/centerstar-bio/starmsa/pkg/starmsa"
)

var runText bool
var runOutput string

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Compute a multiple alignment of the input sequences",
	Long: `Compute a center star multiple alignment of the input sequences.

Input is a FASTA file, whitespace-separated plain text (--text), or
stdin when no file is given. The alignment is printed with a
conservation line and column statistics, or written as gapped FASTA
with --output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New()

		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		seqs, err := readSequences(path, runText)
		if err != nil {
			return err
		}

		aln, st, err := starmsa.Run(cmd.Context(), seqs, cfg.Scheme(), cfg.Workers)
		if err != nil {
			return err
		}

		if runOutput != "" {
			if err := fasta.WriteAlignedFile(runOutput, aln, cfg.Output.Width); err != nil {
				return err
			}
			fmt.Printf("Wrote %d aligned sequences to %s\n", aln.Size(), runOutput)
		} else {
			printAlignment(aln)
		}

		fmt.Println()
		fmt.Println("Alignment Statistics")
		fmt.Println(strings.Repeat("-", 40))
		fmt.Printf("Sequences: %d\n", st.Rows)
		fmt.Printf("Columns: %d\n", st.Columns)
		fmt.Printf("Identical columns: %d\n", st.IdenticalColumns)
		fmt.Printf("Mismatched columns: %d\n", st.MismatchedColumns)
		fmt.Printf("Gapped columns: %d\n", st.GappedColumns)
		fmt.Printf("Identity: %.2f%%\n", st.Identity)
		fmt.Printf("Center sequence: %s\n", aln.IDs[aln.Center])
		return nil
	},
}

// printAlignment writes the alignment rows with a conservation line
// underneath.
func printAlignment(aln *starmsa.MultipleAlignment) {
	idWidth := 0
	for _, id := range aln.IDs {
		if len(id) > idWidth {
			idWidth = len(id)
		}
	}

	for i, row := range aln.Rows {
		fmt.Printf("%-*s  %s\n", idWidth, aln.IDs[i], row)
	}
	fmt.Printf("%-*s  %s\n", idWidth, "", starmsa.ConservationLine(aln))
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runText, "text", false, "treat input as whitespace-separated plain sequences")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "write the alignment as gapped FASTA to this file")
}
