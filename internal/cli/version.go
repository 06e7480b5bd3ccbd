package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/centerstar-bio/starmsa/pkg/starmsa"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(starmsa.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
