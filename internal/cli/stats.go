package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/centerstar-bio/starmsa/internal/fasta"
	"github.com/centerstar-bio/starmsa/pkg/starmsa"
)

var statsAligned bool

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Calculate sequence or alignment statistics",
	Long: `Calculate statistics for a set of sequences, or per-column statistics
for an existing gapped FASTA alignment with --aligned.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		if statsAligned {
			return alignedStats(path)
		}
		return setStats(path)
	},
}

func setStats(path string) error {
	seqs, err := readSequences(path, false)
	if err != nil {
		return err
	}

	st, err := starmsa.SetStats(seqs)
	if err != nil {
		return err
	}

	fmt.Println("Sequence Set Statistics")
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Number of sequences: %d\n", st.Count)
	fmt.Printf("Total bases: %d\n", st.TotalBases)
	fmt.Printf("Length range: %d - %d bp\n", st.MinLength, st.MaxLength)
	fmt.Printf("Mean length: %.1f bp\n", st.MeanLength)
	fmt.Printf("Median length: %d bp\n", st.MedianLength)
	fmt.Printf("N50: %d bp\n", st.N50)
	fmt.Printf("Mean GC content: %.2f%%\n", st.MeanGCContent*100)
	fmt.Printf("Total ambiguous bases: %d\n", st.TotalAmbiguous)
	return nil
}

func alignedStats(path string) error {
	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	aln, err := fasta.ParseAligned(in)
	if err != nil {
		return err
	}

	st := starmsa.AlignmentStatistics(aln)

	fmt.Println("Alignment Statistics")
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Sequences: %d\n", st.Rows)
	fmt.Printf("Columns: %d\n", st.Columns)
	fmt.Printf("Identical columns: %d\n", st.IdenticalColumns)
	fmt.Printf("Mismatched columns: %d\n", st.MismatchedColumns)
	fmt.Printf("Gapped columns: %d\n", st.GappedColumns)
	fmt.Printf("Identity: %.2f%%\n", st.Identity)
	return nil
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(&statsAligned, "aligned", false, "input is a gapped FASTA alignment")
}
