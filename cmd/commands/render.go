package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alnview/alnview-cli/internal/cli"
	"github.com/alnview/alnview-cli/pkg/alignment"
	"github.com/alnview/alnview-cli/pkg/files"
	"github.com/alnview/alnview-cli/pkg/models"
	"github.com/alnview/alnview-cli/pkg/tui"
)

var renderWidth int

// NewRenderCommand creates the render command
func NewRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <reference> <query>",
		Short: "Render a pairwise alignment to the terminal",
		Long: `Render two pre-aligned, equal-length sequences as color-coded paired
tracks without entering the TUI.

Reference cells are always filled with their biochemical class color;
query cells are filled only where they differ from the reference, so
mismatches stand out.

Examples:
  alnview render ARNDC ARNEC
  alnview render MKTLLVAG MKTILVAG --width 4`,
		Args: cobra.ExactArgs(2),
		RunE: runRender,
	}

	cmd.Flags().IntVar(&renderWidth, "width", 60, "Characters per display line")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateWidth(renderWidth); err != nil {
		return err
	}

	result, err := cli.ParseSequencePair(args)
	if err != nil {
		return err
	}

	settings, err := files.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	writeRendered(result, settings, renderWidth)
	return nil
}

func writeRendered(result *alignment.CompareResult, settings *models.Settings, width int) {
	cellStyles := tui.CellStyles(settings.Theme)
	lines := alignment.Layout(result, width)

	for i, line := range lines {
		for _, cell := range line.Cells {
			style := tui.PlainCellStyle
			if cell.Fill {
				if s, ok := cellStyles[cell.Category]; ok {
					style = s
				}
			}
			fmt.Fprint(os.Stdout, style.Render(string(cell.Symbol)))
		}
		fmt.Fprintln(os.Stdout)
		if line.Track == alignment.TrackQuery && i < len(lines)-1 {
			fmt.Fprintln(os.Stdout)
		}
	}
}
