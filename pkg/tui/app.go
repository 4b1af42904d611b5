package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alnview/alnview-cli/pkg/alignment"
	"github.com/alnview/alnview-cli/pkg/models"
)

type sessionState int

const (
	sequenceFormView sessionState = iota
	alignmentViewerView
)

// AlignmentReadyMsg carries a freshly validated comparison from the form to
// the viewer. It replaces any prior alignment wholesale.
type AlignmentReadyMsg struct {
	Result *alignment.CompareResult
}

// SwitchViewMsg requests a view change.
type SwitchViewMsg struct {
	view sessionState
}

type App struct {
	state    sessionState
	form     *SequenceFormModel
	viewer   *AlignmentViewerModel
	settings *models.Settings
	status   *StatusManager
	width    int
	height   int
}

func NewApp(settings *models.Settings) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	return &App{
		state:    sequenceFormView,
		form:     NewSequenceFormModel(),
		viewer:   NewAlignmentViewerModel(settings),
		settings: settings,
		status:   NewStatusManager(),
	}
}

func (a *App) Init() tea.Cmd {
	return a.form.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Pass window size to all sub-models
		a.form.SetSize(msg.Width, msg.Height)
		a.viewer.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		return a, a.status.Show(msg.Text, msg.Error)

	case ClearStatusMsg:
		a.status.Clear(msg)
		return a, nil

	case AlignmentReadyMsg:
		a.state = alignmentViewerView
		a.viewer.SetSize(a.width, a.height)
		a.viewer.SetResult(msg.Result)
		return a, a.viewer.Init()

	case SwitchViewMsg:
		switch msg.view {
		case sequenceFormView:
			// The rendered region is going away: release the selection
			// bridge before switching.
			a.viewer.Teardown()
			a.state = sequenceFormView
			return a, a.form.Init()
		case alignmentViewerView:
			if a.viewer.HasResult() {
				a.state = alignmentViewerView
				a.viewer.SetSize(a.width, a.height)
				a.viewer.Reactivate()
				return a, a.viewer.Init()
			}
		}
		return a, nil
	}

	// Route updates to the active view
	var cmd tea.Cmd
	switch a.state {
	case sequenceFormView:
		var m tea.Model
		m, cmd = a.form.Update(msg)
		if f, ok := m.(*SequenceFormModel); ok {
			a.form = f
		}
	case alignmentViewerView:
		var m tea.Model
		m, cmd = a.viewer.Update(msg)
		if v, ok := m.(*AlignmentViewerModel); ok {
			a.viewer = v
		}
	}

	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case sequenceFormView:
		content = a.form.View()
	case alignmentViewerView:
		content = a.viewer.View()
	default:
		content = "Unknown view"
	}

	if a.status.IsActive() {
		style := StatusSuccessStyle
		if a.status.IsError {
			style = StatusErrorStyle
		}
		content = lipgloss.JoinVertical(lipgloss.Top, content, style.Render(a.status.Text))
	}

	return content
}
