package commands

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alnview/alnview-cli/internal/cli"
	"github.com/alnview/alnview-cli/pkg/models"
)

var statsOutput string

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <reference> <query>",
		Short: "Summarize a pairwise alignment",
		Long: `Print length, match/mismatch counts and percent identity for a pair of
pre-aligned, equal-length sequences.

Examples:
  alnview stats ARNDC ARNEC
  alnview stats ARNDC ARNEC --output json`,
		Args: cobra.ExactArgs(2),
		RunE: runStats,
	}

	cmd.Flags().StringVar(&statsOutput, "output", "text", "Output format (text, json, yaml)")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	result, err := cli.ParseSequencePair(args)
	if err != nil {
		return err
	}

	stats := models.AlignmentStats{
		Length:     result.Len(),
		Matches:    result.Len() - result.Mismatches(),
		Mismatches: result.Mismatches(),
		Identity:   result.Identity(),
	}

	if cli.OutputFormat(statsOutput) == cli.FormatText {
		table := cli.NewTableFormatter(os.Stdout)
		table.Row("LENGTH", "MATCHES", "MISMATCHES", "IDENTITY")
		table.Row(
			itoa(stats.Length),
			itoa(stats.Matches),
			itoa(stats.Mismatches),
			cli.FormatPercent(stats.Identity),
		)
		table.Flush()
		return nil
	}

	return cli.OutputResults(os.Stdout, statsOutput, stats)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
