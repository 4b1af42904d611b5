package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusMsg asks the app to show a transient status message.
type StatusMsg struct {
	Text  string
	Error bool
}

// ClearStatusMsg clears an expired status message.
type ClearStatusMsg struct {
	ID int
}

// StatusManager manages temporary status messages
type StatusManager struct {
	Text            string
	IsError         bool
	DefaultDuration time.Duration

	id int // identifies the current message so stale clears are ignored
}

// NewStatusManager creates a new status manager
func NewStatusManager() *StatusManager {
	return &StatusManager{
		DefaultDuration: 3 * time.Second,
	}
}

// Show displays a message and returns a command that clears it after the
// default duration. A newer message invalidates the pending clear.
func (sm *StatusManager) Show(text string, isError bool) tea.Cmd {
	sm.Text = text
	sm.IsError = isError
	sm.id++
	id := sm.id
	return tea.Tick(sm.DefaultDuration, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}

// Clear removes the message if the clear belongs to it.
func (sm *StatusManager) Clear(msg ClearStatusMsg) {
	if msg.ID == sm.id {
		sm.Text = ""
		sm.IsError = false
	}
}

// IsActive checks if a status is currently showing
func (sm *StatusManager) IsActive() bool {
	return sm.Text != ""
}
