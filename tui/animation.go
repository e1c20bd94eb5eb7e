package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// noticeFadeMsg clears the notice with the matching sequence number. Later
// notices bump the sequence so an older fade cannot clear them early.
type noticeFadeMsg struct {
	seq int
}

func noticeFadeCmd(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return noticeFadeMsg{seq: seq}
	})
}
