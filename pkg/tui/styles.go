package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alnview/alnview-cli/pkg/alignment"
	"github.com/alnview/alnview-cli/pkg/models"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorDanger   = "196" // Red for errors
	ColorSuccess  = "28"  // Green for success
	ColorDark     = "235" // Dark for contrast on filled cells
)

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	StatusSuccessStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("62")).
				Foreground(lipgloss.Color("230")).
				Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorDanger)).
				Foreground(lipgloss.Color("230")).
				Padding(0, 1)
)

// CellStyles resolves the theme into one fill style per biochemical
// category. Unfilled cells render through PlainCellStyle so both variants
// occupy exactly one terminal cell.
func CellStyles(theme models.ThemeSettings) map[alignment.ColorCategory]lipgloss.Style {
	fill := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(color)).
			Foreground(lipgloss.Color(ColorDark))
	}
	return map[alignment.ColorCategory]lipgloss.Style{
		alignment.CategoryHydrophobic:  fill(theme.Hydrophobic),
		alignment.CategoryPolar:        fill(theme.Polar),
		alignment.CategoryAcidic:       fill(theme.Acidic),
		alignment.CategoryBasic:        fill(theme.Basic),
		alignment.CategorySpecialSmall: fill(theme.SpecialSmall),
		alignment.CategorySpecialThiol: fill(theme.SpecialThiol),
	}
}

// PlainCellStyle renders match-colored query cells and gaps: symbol only,
// no fill.
var PlainCellStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color(ColorNormal))
