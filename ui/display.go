// Package ui prints the command-line mode output.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"swift-workbench/artifact"
	"swift-workbench/models"
	"swift-workbench/utils"
)

const sectionWidth = 60

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	sectionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle       = lipgloss.NewStyle().Faint(true)
)

// PrintBanner displays the application banner
func PrintBanner(w io.Writer) {
	banner := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 2).
		Render(titleStyle.Render("SWIFT Message Workbench") + "\n" +
			dimStyle.Render("Compose, validate and parse SWIFT MT messages"))
	fmt.Fprintln(w, banner)
}

// PrintSectionHeader prints a formatted section header
func PrintSectionHeader(w io.Writer, title string) {
	headerContent := "─ " + title + " "
	remaining := sectionWidth - ansi.StringWidth(headerContent)
	if remaining < 0 {
		remaining = 0
	}
	fmt.Fprintln(w, sectionStyle.Render("┌"+headerContent+strings.Repeat("─", remaining)+"┐"))
}

// PrintSectionFooter prints a formatted section footer
func PrintSectionFooter(w io.Writer) {
	fmt.Fprintln(w, sectionStyle.Render("└"+strings.Repeat("─", sectionWidth)+"┘"))
}

// PrintValidation prints a validation result inside a section.
func PrintValidation(w io.Writer, source string, r models.ValidationResult) {
	PrintSectionHeader(w, "Validation")
	printField(w, "Source", source)
	if r.Valid {
		printLine(w, "Status", successStyle.Render("VALID"))
	} else {
		printLine(w, "Status", errorStyle.Render("INVALID"))
	}
	if r.MessageType != "" {
		printField(w, "Message Type", string(r.MessageType))
		printField(w, "Field Count", fmt.Sprint(r.FieldCount))
	}
	for _, e := range r.Errors {
		fmt.Fprintln(w, "  "+errorStyle.Render("✗")+" "+e)
	}
	PrintSectionFooter(w)
}

// PrintCodes prints IBAN and BIC check results inside a section.
func PrintCodes(w io.Writer, results []models.CodeResult) {
	PrintSectionHeader(w, "IBAN/BIC Validation")
	for _, r := range results {
		printField(w, r.Kind, r.Code)
		if r.Valid {
			printLine(w, "Status", successStyle.Render("VALID"))
		} else {
			printLine(w, "Status", errorStyle.Render("INVALID"))
		}
		fmt.Fprintln(w, "  "+r.Message)
	}
	PrintSectionFooter(w)
}

// PrintReceipt prints where an exported message was saved.
func PrintReceipt(w io.Writer, r artifact.Receipt) {
	PrintSectionHeader(w, "Message Saved")
	printField(w, "File", r.Location)
	printField(w, "Size", utils.FormatFileSize(int64(r.Size)))
	printField(w, "BLAKE3", utils.ShortDigest(r.Digest))
	PrintSectionFooter(w)
}

// PrintNotice prints a one-line success message.
func PrintNotice(w io.Writer, message string) {
	fmt.Fprintln(w, successStyle.Render("✓ "+message))
}

// PrintError prints a one-line error message.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("✗ "+err.Error()))
}

func printField(w io.Writer, key, value string) {
	printLine(w, key, highlightStyle.Render(value))
}

func printLine(w io.Writer, key, rendered string) {
	fmt.Fprintf(w, "  %-14s %s\n", key+":", rendered)
}
