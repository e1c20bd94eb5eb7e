package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderOutputSummary generates the content for the right pane with scrolling
func (m Model) renderOutputSummary() string {
	var s strings.Builder

	// Title for the output summary pane
	s.WriteString(highlightStyle.Render("Session Summary") + "\n\n")

	if len(m.outputSummary) == 0 {
		s.WriteString(helpStyle.Render("No operations completed yet.\n\nComposed, validated and exported\nmessages will appear here as you\nwork through the session."))
	} else {
		visibleLines := m.summaryVisibleLines()

		// Apply scroll offset
		startIdx := m.outputScrollOffset
		endIdx := startIdx + visibleLines

		if startIdx >= len(m.outputSummary) {
			startIdx = len(m.outputSummary) - 1
			if startIdx < 0 {
				startIdx = 0
			}
		}

		if endIdx > len(m.outputSummary) {
			endIdx = len(m.outputSummary)
		}

		// Render visible lines
		for i := startIdx; i < endIdx; i++ {
			if i < len(m.outputSummary) {
				s.WriteString(m.outputSummary[i])
				if i < endIdx-1 {
					s.WriteString("\n")
				}
			}
		}

		// Add scroll indicator if content is scrollable
		if len(m.outputSummary) > visibleLines {
			s.WriteString("\n\n" + helpStyle.Render("PgUp/PgDn, Ctrl+U/D, or mouse wheel to scroll"))
		}
	}

	return s.String()
}

// summaryVisibleLines is how many summary lines fit in the right pane.
func (m Model) summaryVisibleLines() int {
	visibleLines := m.height - 8 // Account for borders, padding, title
	if visibleLines < 5 {
		visibleLines = 5
	}
	return visibleLines
}

// maxSummaryScroll keeps the last page of the summary full.
func (m Model) maxSummaryScroll() int {
	return max(len(m.outputSummary)-m.summaryVisibleLines(), 0)
}

// addToOutputSummary adds an item to the output summary
func (m *Model) addToOutputSummary(item string) {
	m.outputSummary = append(m.outputSummary, item)
}

// formatSessionAction formats an action description with italic styling
func formatSessionAction(action string) string {
	return sessionActionStyle.Render(action)
}

// formatSessionStatus formats a status line with key: value format and intelligent coloring
func formatSessionStatus(key, value string) string {
	keyStyled := sessionStatusStyle.Render(key + ": ")
	valueStyled := determineValueStyle(key, value).Render(value)
	return keyStyled + valueStyled
}

// determineValueStyle picks a color for a status value
func determineValueStyle(key, value string) lipgloss.Style {
	lowerKey := strings.ToLower(key)
	lowerValue := strings.ToLower(value)

	// "invalid" contains "valid", so status is matched exactly
	switch lowerKey {
	case "status", "iban", "bic":
		switch lowerValue {
		case "valid":
			return sessionSuccessValueStyle
		case "invalid":
			return sessionErrorValueStyle
		}
	case "file", "type":
		return sessionWarningValueStyle
	case "errors", "fields":
		if lowerValue != "0" && lowerValue != "" {
			if lowerKey == "errors" {
				return sessionErrorValueStyle
			}
			return sessionSuccessValueStyle
		}
	}

	// Success indicators (green)
	successPatterns := []string{
		"complete", "completed", "success", "successful", "copied", "saved", "loaded", "composed",
	}
	for _, pattern := range successPatterns {
		if strings.Contains(lowerValue, pattern) {
			return sessionSuccessValueStyle
		}
	}

	// Error indicators (red)
	errorPatterns := []string{
		"error", "failed", "failure", "missing", "unsupported",
	}
	for _, pattern := range errorPatterns {
		if strings.Contains(lowerValue, pattern) {
			return sessionErrorValueStyle
		}
	}

	return sessionNeutralValueStyle
}

// addFormattedAction adds a formatted action to the output summary
func (m *Model) addFormattedAction(action string) {
	m.addToOutputSummary(formatSessionAction(action))
}

// addFormattedStatusIndented adds a formatted status line with indentation
func (m *Model) addFormattedStatusIndented(key, value string) {
	m.addToOutputSummary("  " + formatSessionStatus(key, value))
}
