package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// DebounceDelay is the quiescence window for selection events: only the
// last selection in a burst reaches the clipboard.
const DebounceDelay = 800 * time.Millisecond

// copyFlushMsg fires when a debounce window elapses. The generation ties it
// to the capture that scheduled it; a stale generation means a newer
// selection superseded this one.
type copyFlushMsg struct {
	gen int
}

// SelectionBridge debounces completed text selections inside the rendered
// alignment region and writes the final one to the system clipboard. It
// owns the pending state and is released as a unit on teardown, so a timer
// that fires after the viewer is gone does nothing.
type SelectionBridge struct {
	active  bool
	gen     int
	pending string
	delay   time.Duration

	// writeClipboard is swapped out in tests; the real bridge goes through
	// atotto/clipboard.
	writeClipboard func(string) error
}

func NewSelectionBridge() *SelectionBridge {
	return &SelectionBridge{
		active:         true,
		delay:          DebounceDelay,
		writeClipboard: clipboard.WriteAll,
	}
}

// Capture records a completed selection and (re)starts the debounce timer.
// A subsequent capture within the window supersedes this one.
func (b *SelectionBridge) Capture(text string) tea.Cmd {
	if !b.active || text == "" {
		return nil
	}
	b.gen++
	b.pending = text
	gen := b.gen
	return tea.Tick(b.delay, func(time.Time) tea.Msg {
		return copyFlushMsg{gen: gen}
	})
}

// Flush performs the clipboard write for the capture that scheduled msg.
// Stale and torn-down flushes are no-ops. Write failures surface as a
// transient error status, never as a crash.
func (b *SelectionBridge) Flush(msg copyFlushMsg) tea.Cmd {
	if !b.active || msg.gen != b.gen || b.pending == "" {
		return nil
	}
	text := b.pending
	b.pending = ""

	if err := b.writeClipboard(text); err != nil {
		return func() tea.Msg {
			return StatusMsg{Text: "clipboard copy failed: " + err.Error(), Error: true}
		}
	}
	return func() tea.Msg {
		return StatusMsg{Text: "selection → clipboard"}
	}
}

// Teardown invalidates any pending capture and deactivates the bridge. The
// generation bump guarantees an already-scheduled tick is discarded.
func (b *SelectionBridge) Teardown() {
	b.active = false
	b.gen++
	b.pending = ""
}

// Reactivate re-arms a torn-down bridge when its region is shown again.
func (b *SelectionBridge) Reactivate() {
	b.active = true
}
