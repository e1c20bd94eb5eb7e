package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Professional blue/purple theme
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#3B82F6") // Blue
	accentColor    = lipgloss.Color("#06B6D4") // Cyan
	successColor   = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	textColor      = lipgloss.Color("#F9FAFB") // Light gray

	// Box container - cleaner style
	boxStyle = lipgloss.NewStyle().
			Padding(2, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Align(lipgloss.Left)

	// Title styles - cleaner, less flashy
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			PaddingBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(textColor).
			PaddingBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	// Menu styles
	choiceStyle = lipgloss.NewStyle()

	selectedStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// Field label, highlighted when the field has focus
	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(secondaryColor).
				Bold(true)

	// Read-only output region
	outputStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Border(lipgloss.NormalBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	// Placeholder text style
	placeholderStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)

	// Status styles
	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	// Highlight style
	highlightStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	// Session summary
	sessionActionStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Italic(true)

	sessionStatusStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	sessionSuccessValueStyle = lipgloss.NewStyle().
					Foreground(successColor)

	sessionWarningValueStyle = lipgloss.NewStyle().
					Foreground(warningColor)

	sessionErrorValueStyle = lipgloss.NewStyle().
				Foreground(errorColor)

	sessionNeutralValueStyle = lipgloss.NewStyle().
					Foreground(textColor)
)
