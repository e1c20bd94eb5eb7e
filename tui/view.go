package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"swift-workbench/swift"
)

// View implements tea.Model
func (m Model) View() string {
	switch m.state {
	case StateMenu:
		return m.viewMenu()
	case StateComposer:
		return m.viewComposer()
	case StateValidator:
		return m.viewEditor("Message Validator", "Paste or load a message, then validate it.", m.validator)
	case StateParser:
		return m.viewEditor("Message Parser", "Paste or load a message, then parse its fields.", m.parser)
	case StateCodes:
		return m.viewCodes()
	case StateDocs:
		return m.viewDocs()
	}

	return ""
}

func (m Model) viewComposer() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Message Composer") + "\n")
	s.WriteString(subtitleStyle.Render("Fill in the fields, then compose the message.") + "\n")

	for i, in := range m.composer.inputs {
		label := labelStyle
		if i == m.composer.focus {
			label = focusedLabelStyle
		}
		s.WriteString(label.Width(20).Render(composerLabels[i]) + in.View() + "\n")
	}
	s.WriteString("\n")

	s.WriteString(m.renderResult("Press ctrl+s to compose a message."))
	s.WriteString(m.renderFeedback())
	s.WriteString(helpLine(m.keys.NextField, m.keys.Submit, m.keys.ResetForm, m.keys.Copy, m.keys.Save, m.keys.Back))

	return m.renderWithDynamicWidth(s.String())
}

func (m Model) viewEditor(title, subtitle string, form messageForm) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(title) + "\n")
	s.WriteString(subtitleStyle.Render(subtitle) + "\n")
	s.WriteString(form.input.View() + "\n\n")
	if m.promptingFile {
		s.WriteString(m.filePrompt.View() + "\n")
		s.WriteString(helpStyle.Render("enter load • esc cancel") + "\n\n")
	}

	s.WriteString(m.renderResult("Press ctrl+s to see the result here."))
	s.WriteString(m.renderFeedback())

	bindings := []key.Binding{m.keys.LoadSample, m.keys.LoadFile, m.keys.ClearInput}
	if m.state == StateValidator {
		bindings = append(bindings, m.keys.ResetForm)
	}
	bindings = append(bindings, m.keys.Submit, m.keys.Copy, m.keys.Save, m.keys.Back)
	s.WriteString(helpLine(bindings...))

	return m.renderWithDynamicWidth(s.String())
}

func (m Model) viewCodes() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("IBAN/BIC Validator") + "\n")
	s.WriteString(subtitleStyle.Render("Enter an IBAN, a BIC or both, then validate them.") + "\n")

	inputs := []struct {
		label string
		view  string
	}{
		{"IBAN", m.codes.iban.View()},
		{"BIC/SWIFT Code", m.codes.bic.View()},
	}
	for i, in := range inputs {
		label := labelStyle
		if i == m.codes.focus {
			label = focusedLabelStyle
		}
		s.WriteString(label.Width(20).Render(in.label) + in.view + "\n")
	}
	s.WriteString("\n")

	s.WriteString(m.renderResult("Press ctrl+s to validate the codes."))
	s.WriteString(m.renderFeedback())
	s.WriteString(helpLine(m.keys.NextField, m.keys.LoadSample, m.keys.ClearInput, m.keys.Submit, m.keys.Copy, m.keys.Save, m.keys.Back))

	return m.renderWithDynamicWidth(s.String())
}

func (m Model) viewDocs() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Documentation") + "\n")
	s.WriteString(subtitleStyle.Render("Message types and fields the workbench understands") + "\n")

	s.WriteString(sectionStyle.Render("Message Types") + "\n")
	for _, t := range swift.SupportedTypes {
		s.WriteString(focusedLabelStyle.Render(string(t.Type)+" "+t.Name) + "\n")
		s.WriteString("  " + t.Description + "\n")
		s.WriteString(helpStyle.Render("  "+t.Features) + "\n")
	}
	s.WriteString("\n")

	s.WriteString(sectionStyle.Render("Field Tags") + "\n")
	for _, f := range swift.KnownFields() {
		s.WriteString(labelStyle.Width(8).Render(":"+f.Tag+":") + f.Name + "\n")
	}
	s.WriteString("\n")

	s.WriteString(sectionStyle.Render("Editing Keys") + "\n")
	for _, b := range []key.Binding{
		m.keys.LoadSample, m.keys.LoadFile, m.keys.ClearInput, m.keys.ResetForm,
		m.keys.Submit, m.keys.Copy, m.keys.Save, m.keys.ScrollUp,
	} {
		h := b.Help()
		s.WriteString(labelStyle.Width(10).Render(h.Key) + h.Desc + "\n")
	}
	s.WriteString("\n")

	s.WriteString(helpLine(m.keys.Back, m.keys.Quit))

	return m.renderWithDynamicWidth(s.String())
}

// renderResult draws the output region of the current view. Long lines are
// truncated to the pane; the exported text is never altered.
func (m Model) renderResult(placeholder string) string {
	text, ok := m.results[m.state]
	if !ok {
		return placeholderStyle.Render(placeholder) + "\n\n"
	}

	width := m.contentWidth() - 4
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "…")
	}
	return sectionStyle.Render("Output") + "\n" + outputStyle.Render(strings.Join(lines, "\n")) + "\n\n"
}

// renderFeedback shows the form error and the current notice, if any.
func (m Model) renderFeedback() string {
	var s strings.Builder
	if m.formError != "" {
		s.WriteString(errorStyle.Render("✗ "+m.formError) + "\n")
	}
	if m.notice != "" {
		s.WriteString(successStyle.Render("✓ "+m.notice) + "\n")
	}
	if s.Len() > 0 {
		s.WriteString("\n")
	}
	return s.String()
}

// renderWithDynamicWidth renders content with two-pane layout
func (m Model) renderWithDynamicWidth(content string) string {
	if m.width > 0 && m.height > 0 {
		if m.showRightPane && m.leftPaneWidth > 0 && m.rightPaneWidth > 0 {
			return m.renderTwoPaneLayout(content)
		}
		return m.renderSinglePaneLayout(content)
	}

	// Plain box until the first window size arrives
	return boxStyle.Render(content)
}

// renderSinglePaneLayout renders content in single pane mode
func (m Model) renderSinglePaneLayout(content string) string {
	// Leave some margin around the edges for visual breathing room
	marginHorizontal := 2
	marginVertical := 1

	// Calculate content area leaving margins
	contentWidth := m.width - (marginHorizontal * 2) - 2 // 2 for border
	contentHeight := m.height - (marginVertical * 2) - 2 // 2 for border

	// Ensure minimum usable size
	if contentWidth < 50 {
		contentWidth = 50
	}
	if contentHeight < 10 {
		contentHeight = 10
	}

	mainStyle := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor).
		Align(lipgloss.Left)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Padding(marginVertical, marginHorizontal).
		Render(mainStyle.Render(content))
}

// renderTwoPaneLayout renders content with left and right panes
func (m Model) renderTwoPaneLayout(content string) string {
	marginVertical := 1
	contentHeight := m.height - (marginVertical * 2) - 2 // 2 for border

	if contentHeight < 10 {
		contentHeight = 10
	}

	leftWidth := m.leftPaneWidth - 4   // Account for border and padding
	rightWidth := m.rightPaneWidth - 4 // Account for border and padding

	paneStyle := lipgloss.NewStyle().
		Height(contentHeight).
		Padding(1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor)

	leftPane := paneStyle.Width(leftWidth).Render(content)
	rightPane := paneStyle.Width(rightWidth).Render(m.renderOutputSummary())

	combinedPanes := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, " ", rightPane)

	return lipgloss.NewStyle().
		Padding(marginVertical, 1).
		Render(combinedPanes)
}
