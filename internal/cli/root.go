// Package cli is for command line interactions with the starmsa application
package cli

import (
	"context"
	"log"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/centerstar-bio/starmsa/internal/config"
	"github.com/centerstar-bio/starmsa/pkg/starmsa"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "starmsa",
	Short: `Align sets of DNA sequences with the center star method.
Reads FASTA or plain text input and writes gapped FASTA alignments`,
	Version:       starmsa.Version(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(config.Setup)

	rootCmd.PersistentFlags().Int("match", 1, "score for a matching base pair")
	rootCmd.PersistentFlags().Int("mismatch", -1, "score for a mismatching base pair")
	rootCmd.PersistentFlags().Int("gap", -2, "score per gap position")
	rootCmd.PersistentFlags().IntP("workers", "w", runtime.NumCPU(), "goroutines for the score matrix phase")

	// Bind the parameters to viper
	viper.BindPFlag("scoring.match", rootCmd.PersistentFlags().Lookup("match"))
	viper.BindPFlag("scoring.mismatch", rootCmd.PersistentFlags().Lookup("mismatch"))
	viper.BindPFlag("scoring.gap", rootCmd.PersistentFlags().Lookup("gap"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
}
