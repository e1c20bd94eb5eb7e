package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"swift-workbench/artifact"
)

// copyFinishedMsg reports the outcome of a clipboard write.
type copyFinishedMsg struct {
	outcome artifact.Outcome
}

// copyCmd runs a clipboard task on bubbletea's command goroutine so the UI
// stays responsive while the write is pending.
func copyCmd(task artifact.Task) tea.Cmd {
	if task == nil {
		return nil
	}
	return func() tea.Msg {
		return copyFinishedMsg{outcome: task(context.Background())}
	}
}
