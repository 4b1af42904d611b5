package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/alnview/alnview-cli/pkg/alignment"
	"github.com/alnview/alnview-cli/pkg/models"
)

const (
	viewerHeaderRows = 2 // header line + blank line above the viewport
	viewerFooterRows = 2 // summary + help line below the viewport
)

// cellPos addresses one cell in content coordinates: row into the rendered
// line list (separators included), column into that line.
type cellPos struct {
	row int
	col int
}

// AlignmentViewerModel renders the paired tracks and hosts the selection
// bridge. The display lines are derived state, regenerated in full whenever
// the result or the measured width changes.
type AlignmentViewerModel struct {
	width  int
	height int

	settings     *models.Settings
	result       *alignment.CompareResult
	charsPerLine int
	lines        []alignment.DisplayLine
	plainLines   []string

	viewport   viewport.Model
	cellStyles map[alignment.ColorCategory]lipgloss.Style
	bridge     *SelectionBridge

	selecting bool
	hasSel    bool
	selStart  cellPos
	selEnd    cellPos
}

func NewAlignmentViewerModel(settings *models.Settings) *AlignmentViewerModel {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	return &AlignmentViewerModel{
		settings:   settings,
		viewport:   viewport.New(80, 20),
		cellStyles: CellStyles(settings.Theme),
		bridge:     NewSelectionBridge(),
	}
}

func (m *AlignmentViewerModel) Init() tea.Cmd {
	return nil
}

// SetResult replaces the displayed alignment wholesale and re-arms the
// selection bridge for the new region.
func (m *AlignmentViewerModel) SetResult(result *alignment.CompareResult) {
	m.result = result
	m.clearSelection()
	m.bridge.Reactivate()
	m.relayout()
	m.viewport.GotoTop()
}

func (m *AlignmentViewerModel) HasResult() bool {
	return m.result != nil
}

// Teardown releases the selection bridge so pending debounce timers cannot
// act on a destroyed region.
func (m *AlignmentViewerModel) Teardown() {
	m.bridge.Teardown()
	m.clearSelection()
}

// Reactivate re-arms the selection bridge when the region is shown again
// with its existing result.
func (m *AlignmentViewerModel) Reactivate() {
	m.bridge.Reactivate()
}

func (m *AlignmentViewerModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	m.viewport.Width = width
	contentHeight := height - viewerHeaderRows - viewerFooterRows
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.viewport.Height = contentHeight

	m.charsPerLine = width - 2*m.settings.Layout.SidePadding
	m.relayout()
}

// relayout regenerates the display lines and rendered content from scratch.
// No incremental patching: the whole list is derived from the result and
// the current width within one update.
func (m *AlignmentViewerModel) relayout() {
	m.lines = alignment.Layout(m.result, m.charsPerLine)
	m.renderContent()
}

func (m *AlignmentViewerModel) renderContent() {
	m.plainLines = m.plainLines[:0]
	styled := make([]string, 0, len(m.lines)*2)
	indent := strings.Repeat(" ", m.settings.Layout.SidePadding)

	for i, line := range m.lines {
		row := len(m.plainLines)
		styled = append(styled, indent+m.renderLine(line, row))
		m.plainLines = append(m.plainLines, line.PlainText())

		// A blank gap after each (reference, query) pair keeps the chunk
		// grouping readable; the pair itself stays contiguous.
		if line.Track == alignment.TrackQuery && i < len(m.lines)-1 {
			for g := 0; g < m.settings.Layout.PairGap; g++ {
				styled = append(styled, "")
				m.plainLines = append(m.plainLines, "")
			}
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
}

func (m *AlignmentViewerModel) renderLine(line alignment.DisplayLine, row int) string {
	var b strings.Builder
	for col, cell := range line.Cells {
		style := PlainCellStyle
		if cell.Fill {
			if s, ok := m.cellStyles[cell.Category]; ok {
				style = s
			}
		}
		if m.inSelection(row, col) {
			style = style.Reverse(true)
		}
		b.WriteString(style.Render(string(cell.Symbol)))
	}
	return b.String()
}

func (m *AlignmentViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg {
				return SwitchViewMsg{view: sequenceFormView}
			}
		case "y":
			// Copy the whole alignment, bypassing the debounce: an explicit
			// keypress is not a selection burst.
			return m, m.copyAll()
		case "up", "k", "down", "j", "pgup", "pgdown", "home", "end":
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case copyFlushMsg:
		return m, m.bridge.Flush(msg)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *AlignmentViewerModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.renderContent() // selection rows may have scrolled under the cursor
		return cmd
	}
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return nil
	}

	pos := m.toContentPos(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if !m.inBounds(pos) {
			m.clearSelection()
			m.renderContent()
			return nil
		}
		m.selecting = true
		m.hasSel = true
		m.selStart = pos
		m.selEnd = pos
		m.renderContent()

	case tea.MouseActionMotion:
		if m.selecting {
			m.selEnd = pos
			m.renderContent()
		}

	case tea.MouseActionRelease:
		if !m.selecting {
			return nil
		}
		m.selecting = false
		m.selEnd = pos
		m.renderContent()
		// Both anchors must land inside the rendered region; anything else
		// is not a capture.
		if !m.inBounds(m.selStart) || !m.inBounds(m.selEnd) {
			m.clearSelection()
			m.renderContent()
			return nil
		}
		if text := m.selectedText(); text != "" {
			return m.bridge.Capture(text)
		}
	}
	return nil
}

// toContentPos maps terminal coordinates to content coordinates, accounting
// for the rows above the viewport and its scroll offset.
func (m *AlignmentViewerModel) toContentPos(x, y int) cellPos {
	return cellPos{
		row: y - viewerHeaderRows + m.viewport.YOffset,
		col: x - m.settings.Layout.SidePadding,
	}
}

func (m *AlignmentViewerModel) inBounds(p cellPos) bool {
	if p.row < 0 || p.row >= len(m.plainLines) {
		return false
	}
	return p.col >= 0 && p.col < len(m.plainLines[p.row])+1
}

func (m *AlignmentViewerModel) clearSelection() {
	m.selecting = false
	m.hasSel = false
}

// selectionRange returns the normalized anchors, start before end in
// reading order.
func (m *AlignmentViewerModel) selectionRange() (cellPos, cellPos) {
	a, b := m.selStart, m.selEnd
	if a.row > b.row || (a.row == b.row && a.col > b.col) {
		a, b = b, a
	}
	return a, b
}

func (m *AlignmentViewerModel) inSelection(row, col int) bool {
	if !m.hasSel {
		return false
	}
	a, b := m.selectionRange()
	if row < a.row || row > b.row {
		return false
	}
	if row == a.row && col < a.col {
		return false
	}
	if row == b.row && col > b.col {
		return false
	}
	return true
}

// selectedText extracts the selected symbols from the plain rendered lines,
// multi-row selections joined with newlines.
func (m *AlignmentViewerModel) selectedText() string {
	a, b := m.selectionRange()

	clampCol := func(row, col int) int {
		if col > len(m.plainLines[row]) {
			return len(m.plainLines[row])
		}
		return col
	}

	if a.row == b.row {
		return m.plainLines[a.row][clampCol(a.row, a.col):clampCol(a.row, b.col+1)]
	}

	parts := make([]string, 0, b.row-a.row+1)
	parts = append(parts, m.plainLines[a.row][clampCol(a.row, a.col):])
	for r := a.row + 1; r < b.row; r++ {
		parts = append(parts, m.plainLines[r])
	}
	parts = append(parts, m.plainLines[b.row][:clampCol(b.row, b.col+1)])
	return strings.Join(parts, "\n")
}

// copyAll writes the full plain-text rendering to the clipboard without
// debouncing.
func (m *AlignmentViewerModel) copyAll() tea.Cmd {
	if len(m.plainLines) == 0 {
		return nil
	}
	text := strings.Join(m.plainLines, "\n")
	if err := m.bridge.writeClipboard(text); err != nil {
		return func() tea.Msg {
			return StatusMsg{Text: "clipboard copy failed: " + err.Error(), Error: true}
		}
	}
	return func() tea.Msg {
		return StatusMsg{Text: "alignment → clipboard"}
	}
}

func (m *AlignmentViewerModel) View() string {
	header := renderHeader(m.width, "alignment")

	if m.result == nil {
		return lipgloss.JoinVertical(lipgloss.Top, header, "", NormalStyle.Render(" No alignment yet"))
	}
	if m.charsPerLine < 1 {
		return lipgloss.JoinVertical(lipgloss.Top, header, "", NormalStyle.Render(" Window too narrow"))
	}

	summary := HelpStyle.Render(fmt.Sprintf(" %d columns · %d mismatches · %.1f%% identity",
		m.result.Len(), m.result.Mismatches(), m.result.Identity()*100))
	help := HelpStyle.Render(wordwrap.String("select text to copy it · y: copy all · esc: back · ctrl+c: quit", m.width-1))

	return lipgloss.JoinVertical(lipgloss.Top,
		header,
		"",
		m.viewport.View(),
		summary,
		help,
	)
}
