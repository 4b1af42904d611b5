package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alnview/alnview-cli/pkg/alignment"
	"github.com/alnview/alnview-cli/pkg/models"
)

func TestAppSwitchesToViewerOnResult(t *testing.T) {
	app := NewApp(models.DefaultSettings())
	app.Update(tea.WindowSizeMsg{Width: 40, Height: 30})

	res, err := alignment.Compare("ARNDC", "ARNEC")
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	app.Update(AlignmentReadyMsg{Result: res})

	if app.state != alignmentViewerView {
		t.Errorf("state = %v, want viewer", app.state)
	}
	if !app.viewer.HasResult() {
		t.Error("viewer should hold the new result")
	}
}

func TestAppEscapeTearsDownViewer(t *testing.T) {
	app := NewApp(models.DefaultSettings())
	app.Update(tea.WindowSizeMsg{Width: 40, Height: 30})

	res, _ := alignment.Compare("ARNDC", "ARNEC")
	app.Update(AlignmentReadyMsg{Result: res})
	app.viewer.bridge.writeClipboard = (&recorder{}).write

	// Leave a capture pending, then go back to the form.
	app.viewer.bridge.Capture("pending")
	app.Update(SwitchViewMsg{view: sequenceFormView})

	if app.state != sequenceFormView {
		t.Fatalf("state = %v, want form", app.state)
	}
	if app.viewer.bridge.active {
		t.Error("bridge should be torn down when the viewer goes away")
	}
}

func TestAppReturnsToPriorAlignment(t *testing.T) {
	app := NewApp(models.DefaultSettings())
	app.Update(tea.WindowSizeMsg{Width: 40, Height: 30})

	res, _ := alignment.Compare("ARNDC", "ARNEC")
	app.Update(AlignmentReadyMsg{Result: res})
	app.Update(SwitchViewMsg{view: sequenceFormView})

	// A failed resubmission leaves the old result intact; esc shows it.
	app.Update(SwitchViewMsg{view: alignmentViewerView})
	if app.state != alignmentViewerView {
		t.Errorf("state = %v, want viewer", app.state)
	}
	if !app.viewer.bridge.active {
		t.Error("bridge should be re-armed when the viewer is shown again")
	}
}

func TestAppIgnoresViewerSwitchWithoutResult(t *testing.T) {
	app := NewApp(models.DefaultSettings())
	app.Update(tea.WindowSizeMsg{Width: 40, Height: 30})

	app.Update(SwitchViewMsg{view: alignmentViewerView})
	if app.state != sequenceFormView {
		t.Errorf("state = %v, want form (nothing to show yet)", app.state)
	}
}

func TestAppStatusMessageLifecycle(t *testing.T) {
	app := NewApp(models.DefaultSettings())
	app.Update(tea.WindowSizeMsg{Width: 40, Height: 30})

	_, cmd := app.Update(StatusMsg{Text: "selection → clipboard"})
	if cmd == nil {
		t.Fatal("status should schedule its own expiry")
	}
	if !app.status.IsActive() || app.status.Text != "selection → clipboard" {
		t.Errorf("status = %q, want the message showing", app.status.Text)
	}

	app.Update(ClearStatusMsg{ID: app.status.id})
	if app.status.IsActive() {
		t.Error("status should clear on its expiry message")
	}
}

func TestAppStaleClearIgnored(t *testing.T) {
	app := NewApp(models.DefaultSettings())
	app.Update(StatusMsg{Text: "first"})
	app.Update(StatusMsg{Text: "second"})

	// The first message's expiry fires after it was replaced.
	app.Update(ClearStatusMsg{ID: app.status.id - 1})
	if app.status.Text != "second" {
		t.Errorf("status = %q, want %q", app.status.Text, "second")
	}
}
