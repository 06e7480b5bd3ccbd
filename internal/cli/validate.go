package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/centerstar-bio/starmsa/internal/fasta"
	"github.com/centerstar-bio/starmsa/pkg/starmsa"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate every sequence in the input",
	Long: `Validate every sequence in the input and report each failure.

Input is FASTA or plain text with one sequence per line; the format is
detected from the first line. The exit code is non-zero when any
record is invalid.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		in, err := openInput(path)
		if err != nil {
			return err
		}
		defer in.Close()

		records, err := fasta.ScanRecords(in)
		if err != nil {
			return err
		}

		report := starmsa.CheckAll(records)
		fmt.Print(report)

		if !report.AllValid() {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
