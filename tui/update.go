package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// minTwoPaneWidth is the narrowest terminal that still shows the session summary.
const minTwoPaneWidth = 100

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMessage(msg)
	case tea.MouseMsg:
		return m.handleMouseMessage(msg)
	case noticeMsg:
		return m.handleNotice(msg)
	case noticeFadeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	case copyFinishedMsg:
		return m.handleCopyFinished(msg)
	}

	return m, nil
}

// handleWindowSize handles window resize events
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Calculate pane sizes
	m.showRightPane = m.width >= minTwoPaneWidth
	if m.showRightPane {
		m.leftPaneWidth = int(float64(m.width) * 0.6)    // 60% for left pane
		m.rightPaneWidth = m.width - m.leftPaneWidth - 1 // 40% for right pane (minus 1 for separator)
	} else {
		m.leftPaneWidth = m.width
		m.rightPaneWidth = 0
	}

	inner := m.contentWidth()
	m.composer.setWidth(max(inner-22, 20))
	m.validator.input.SetWidth(max(inner-2, 20))
	m.parser.input.SetWidth(max(inner-2, 20))
	m.codes.iban.Width = max(inner-22, 20)
	m.codes.bic.Width = max(inner-22, 20)
	m.filePrompt.Width = max(inner-8, 20)

	return m, nil
}

// contentWidth is the usable text width of the left pane.
func (m Model) contentWidth() int {
	if m.leftPaneWidth == 0 {
		return 60
	}
	return max(m.leftPaneWidth-8, 40)
}

// handleKeyMessage handles keyboard input based on current state
func (m Model) handleKeyMessage(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.promptingFile {
		return m.updateFilePrompt(msg)
	}

	// Scroll keys always belong to the summary, even while it is hidden,
	// so they never reach a text input.
	switch {
	case key.Matches(msg, m.keys.ScrollUp):
		m.scrollSummary(-5)
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.scrollSummary(5)
		return m, nil
	}

	// Delegate to state-specific handlers
	switch m.state {
	case StateMenu:
		return m.updateMenu(msg)
	case StateComposer, StateValidator, StateParser, StateCodes:
		return m.updateEditor(msg)
	case StateDocs:
		return m.updateDocs(msg)
	}

	return m, nil
}

// handleMouseMessage handles mouse input
func (m Model) handleMouseMessage(msg tea.MouseMsg) (Model, tea.Cmd) {
	// Handle mouse wheel scrolling for right pane when visible
	if m.showRightPane {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollSummary(-2)
		case tea.MouseButtonWheelDown:
			m.scrollSummary(2)
		}
	}

	return m, nil
}

func (m *Model) scrollSummary(delta int) {
	if !m.showRightPane {
		return
	}
	m.outputScrollOffset = min(max(m.outputScrollOffset+delta, 0), m.maxSummaryScroll())
}

// handleNotice shows a notice and keeps listening for the next one.
func (m Model) handleNotice(msg noticeMsg) (Model, tea.Cmd) {
	m.noticeSeq++
	m.notice = msg.text
	return m, tea.Batch(
		noticeFadeCmd(m.noticeSeq, m.cfg.NoticeDuration),
		m.notices.listen(),
	)
}

// handleCopyFinished records a successful copy. Failures were already
// logged by the exporter and leave no trace in the UI.
func (m Model) handleCopyFinished(msg copyFinishedMsg) (Model, tea.Cmd) {
	if msg.outcome.Err != nil {
		return m, nil
	}
	m.addFormattedAction("Message Copied")
	m.addFormattedStatusIndented("Bytes", strconv.Itoa(msg.outcome.Bytes))
	return m, nil
}
