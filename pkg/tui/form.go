package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alnview/alnview-cli/pkg/alignment"
)

const (
	referenceField = iota
	queryField
	fieldCount
)

// SequenceFormModel is the submission form: two required sequence fields
// with live filtering, validated as a pair on submit.
type SequenceFormModel struct {
	inputs    [fieldCount]textinput.Model
	focused   int
	fieldErrs [fieldCount]string
	rootErr   string
	width     int
	height    int
}

func NewSequenceFormModel() *SequenceFormModel {
	m := &SequenceFormModel{}
	labels := [fieldCount]string{"e.g. MKTLLVAG", "e.g. MKTILVAG"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.Prompt = "> "
		ti.Width = 60
		m.inputs[i] = ti
	}
	m.inputs[referenceField].Focus()
	return m
}

func (m *SequenceFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SequenceFormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	inputWidth := width - 8
	if inputWidth > 80 {
		inputWidth = 80
	}
	if inputWidth < 20 {
		inputWidth = 20
	}
	for i := range m.inputs {
		m.inputs[i].Width = inputWidth
	}
}

func (m *SequenceFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focused + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focused + fieldCount - 1) % fieldCount)
			return m, nil
		case "enter":
			return m, m.submit()
		case "esc":
			// Back to the previous alignment, if one is rendered. The app
			// ignores this when there is nothing to show.
			return m, func() tea.Msg {
				return SwitchViewMsg{view: alignmentViewerView}
			}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)

	// Live filtering: drop anything outside the alphabet as it is typed
	// (or pasted) so the buffer never holds an invalid character.
	for i := range m.inputs {
		if filtered := alignment.FilterLive(m.inputs[i].Value()); filtered != m.inputs[i].Value() {
			m.inputs[i].SetValue(filtered)
			m.inputs[i].CursorEnd()
		}
	}

	return m, cmd
}

func (m *SequenceFormModel) setFocus(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

// submit runs the authoritative validation pipeline. Errors are shown
// field-scoped (invalid symbol, required) or root-scoped (length mismatch);
// every attempt clears the previous errors first.
func (m *SequenceFormModel) submit() tea.Cmd {
	m.rootErr = ""
	for i := range m.fieldErrs {
		m.fieldErrs[i] = ""
	}

	var seqs [fieldCount]alignment.Sequence
	failed := false
	for i := range m.inputs {
		raw := m.inputs[i].Value()
		if raw == "" {
			m.fieldErrs[i] = "This field is required"
			failed = true
			continue
		}
		seq, err := alignment.Normalize(raw)
		if err != nil {
			m.fieldErrs[i] = err.Error()
			failed = true
			continue
		}
		seqs[i] = seq
	}
	if failed {
		return nil
	}

	if len(seqs[referenceField]) != len(seqs[queryField]) {
		m.rootErr = "All sequences must be of the same length"
		return nil
	}

	result, err := alignment.Compare(seqs[referenceField], seqs[queryField])
	if err != nil {
		// Lengths were checked above, so this only guards against future
		// comparator errors.
		m.rootErr = err.Error()
		return nil
	}

	return func() tea.Msg {
		return AlignmentReadyMsg{Result: result}
	}
}

func (m *SequenceFormModel) View() string {
	header := renderHeader(m.width, "pairwise sequence viewer")

	labels := [fieldCount]string{"Reference sequence", "Query sequence"}
	sections := []string{header, ""}

	for i := range m.inputs {
		border := InactiveBorderStyle
		if i == m.focused {
			border = ActiveBorderStyle
		}
		field := lipgloss.JoinVertical(lipgloss.Left,
			LabelStyle.Render(labels[i]),
			border.Render(m.inputs[i].View()),
		)
		if m.fieldErrs[i] != "" {
			field = lipgloss.JoinVertical(lipgloss.Left, field, ErrorStyle.Render("× "+m.fieldErrs[i]))
		}
		sections = append(sections, field)
	}

	if m.rootErr != "" {
		sections = append(sections, ErrorStyle.Render("× "+m.rootErr))
	}

	sections = append(sections, "", HelpStyle.Render("enter: compare · tab: next field · esc: back · ctrl+c: quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}
