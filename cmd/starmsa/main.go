// Command starmsa aligns sets of DNA sequences with the center star
// method.
//
// Usage:
//
//	starmsa [command] [flags]
//
// Commands:
//
//	align       Globally align two sequences
//	run         Compute a multiple alignment
//	matrix      Print the pairwise score matrix
//	stats       Calculate sequence or alignment statistics
//	validate    Validate every sequence in the input
//	version     Show version information
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/centerstar-bio/starmsa/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}
