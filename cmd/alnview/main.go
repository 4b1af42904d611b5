package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alnview/alnview-cli/cmd/commands"
	"github.com/alnview/alnview-cli/pkg/files"
	"github.com/alnview/alnview-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "alnview",
	Short: "Terminal viewer for pairwise protein sequence alignments",
	Long:  `Alnview renders two pre-aligned, equal-length amino-acid sequences as color-coded paired tracks so differences stand out. Run without arguments for the interactive TUI, or use the render/stats/clipboard subcommands for one-shot output.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := files.ReadSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to read settings: %v\n", err)
			os.Exit(1)
		}

		app := tui.NewApp(settings)
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Alnview",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Alnview version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewClipboardCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
