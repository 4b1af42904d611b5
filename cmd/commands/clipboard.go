package commands

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/alnview/alnview-cli/internal/cli"
	"github.com/alnview/alnview-cli/pkg/alignment"
)

var clipboardWidth int

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipboard <reference> <query>",
		Short: "Copy a rendered alignment to the clipboard",
		Long: `Copy the plain-text paired-track rendering of an alignment to the
system clipboard, ready to be pasted into a notebook or report.

Examples:
  alnview clipboard ARNDC ARNEC
  alnview clipboard MKTLLVAG MKTILVAG --width 4`,
		Args:    cobra.ExactArgs(2),
		Aliases: []string{"clip", "copy"},
		RunE:    runClipboard,
	}

	cmd.Flags().IntVar(&clipboardWidth, "width", 60, "Characters per display line")

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateWidth(clipboardWidth); err != nil {
		return err
	}

	result, err := cli.ParseSequencePair(args)
	if err != nil {
		return err
	}

	text := plainRendering(result, clipboardWidth)
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	fmt.Printf("✓ Copied alignment (%d columns) to clipboard\n", result.Len())
	return nil
}

func plainRendering(result *alignment.CompareResult, width int) string {
	lines := alignment.Layout(result, width)
	parts := make([]string, 0, len(lines)*2)
	for i, line := range lines {
		parts = append(parts, line.PlainText())
		if line.Track == alignment.TrackQuery && i < len(lines)-1 {
			parts = append(parts, "")
		}
	}
	return strings.Join(parts, "\n")
}
