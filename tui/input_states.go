package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"swift-workbench/artifact"
	"swift-workbench/models"
	"swift-workbench/swift"
	"swift-workbench/utils"
)

// Menu state handlers
func (m Model) updateMenu(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case msg.String() == "q":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case 0: // Compose Message
			m.state = StateComposer
		case 1: // Validate Message
			m.state = StateValidator
		case 2: // Parse Message
			m.state = StateParser
		case 3: // Validate IBAN/BIC
			m.state = StateCodes
		case 4: // Documentation
			m.state = StateDocs
		case 5: // Exit
			return m, tea.Quit
		}
		m.formError = ""
	}

	return m, nil
}

func (m Model) viewMenu() string {
	var s strings.Builder

	// Header
	title := titleStyle.Render("SWIFT Message Workbench")
	subtitle := subtitleStyle.Render("Compose, validate and parse SWIFT MT messages")

	s.WriteString(title + "\n")
	s.WriteString(subtitle + "\n")

	// Menu options with descriptions
	descriptions := []string{
		"Build an MT940, MT101, MT103 or MT104 message from a few fields",
		"Check a pasted message for the fields its type requires",
		"Break a pasted message into its tagged fields",
		"Check the format of an IBAN and a BIC/SWIFT code",
		"Supported message types, field tags and key bindings",
		"Exit the application",
	}

	for i, choice := range m.choices {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
			choice = selectedStyle.Render(choice)
		} else {
			choice = choiceStyle.Render(choice)
		}
		s.WriteString(cursor + " " + choice + "\n")
		if i < len(descriptions) {
			s.WriteString("   " + helpStyle.Render(descriptions[i]) + "\n")
		}
		s.WriteString("\n")
	}

	s.WriteString(helpLine(m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Quit))

	return m.renderWithDynamicWidth(s.String())
}

// updateEditor handles the composer, validator and parser views. Action
// chords are matched before the focused input sees the key.
func (m Model) updateEditor(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.state = StateMenu
		m.formError = ""
		return m, nil
	case key.Matches(msg, m.keys.LoadSample):
		if m.state == StateCodes {
			m.codes.loadSample()
			m.addFormattedAction("Sample Loaded")
			return m, nil
		}
		s := m.surfaces()
		if s.Input != nil {
			artifact.LoadSample(s)
			m.addFormattedAction("Sample Loaded")
		}
		return m, nil
	case key.Matches(msg, m.keys.LoadFile):
		if m.surfaces().Input == nil {
			return m, nil
		}
		m.promptingFile = true
		m.filePrompt.SetValue("")
		m.formError = ""
		return m, tea.Batch(m.filePrompt.Focus(), textinput.Blink)
	case key.Matches(msg, m.keys.ClearInput):
		if m.state == StateCodes {
			m.codes.Reset()
			delete(m.results, m.state)
			return m, nil
		}
		artifact.ClearInput(m.surfaces())
		return m, nil
	case key.Matches(msg, m.keys.ResetForm):
		artifact.ResetForm(m.surfaces())
		m.formError = ""
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m, copyCmd(m.exporter.CopyMessage(m.surfaces()))
	case key.Matches(msg, m.keys.Save):
		m.save()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case StateComposer:
		switch {
		case key.Matches(msg, m.keys.NextField):
			m.composer.move(1)
		case key.Matches(msg, m.keys.PrevField):
			m.composer.move(-1)
		default:
			m.composer, cmd = m.composer.update(msg)
		}
	case StateValidator:
		m.validator, cmd = m.validator.update(msg)
	case StateParser:
		m.parser, cmd = m.parser.update(msg)
	case StateCodes:
		if key.Matches(msg, m.keys.NextField) || key.Matches(msg, m.keys.PrevField) {
			m.codes.toggle()
		} else {
			m.codes, cmd = m.codes.update(msg)
		}
	}
	return m, cmd
}

// updateFilePrompt handles the file path prompt opened from the validator
// and parser views.
func (m Model) updateFilePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeFilePrompt()
		return m, nil
	case tea.KeyEnter:
		path := strings.TrimSpace(m.filePrompt.Value())
		m.closeFilePrompt()
		m.loadFile(path)
		return m, nil
	}

	var cmd tea.Cmd
	m.filePrompt, cmd = m.filePrompt.Update(msg)
	return m, cmd
}

func (m *Model) closeFilePrompt() {
	m.promptingFile = false
	m.filePrompt.Blur()
}

// loadFile replaces the draft with the content of a message file.
func (m *Model) loadFile(path string) {
	if path == "" {
		return
	}
	text, err := utils.LoadMessageFile(path)
	if err != nil {
		m.logger.Warn("load message file", "path", path, "error", err)
		m.formError = err.Error()
		return
	}

	artifact.LoadText(m.surfaces(), text)
	m.formError = ""
	m.addFormattedAction("File Loaded")
	m.addFormattedStatusIndented("File", filepath.Base(path))
	m.addFormattedStatusIndented("Size", utils.FormatFileSize(int64(len(text))))
}

// Docs state handler
func (m Model) updateDocs(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || msg.String() == "q" {
		m.state = StateMenu
	}
	return m, nil
}

// submit runs the action of the current view and stores its result text.
func (m *Model) submit() {
	m.formError = ""

	switch m.state {
	case StateComposer:
		req := m.composer.request()
		msg, err := swift.Compose(req)
		if err != nil {
			m.formError = err.Error()
			delete(m.results, m.state)
			return
		}
		m.results[m.state] = msg
		m.addFormattedAction("Message Composed")
		m.addFormattedStatusIndented("Type", string(swift.NormalizeType(req.MessageType)))
		m.addFormattedStatusIndented("Reference", strings.TrimSpace(req.Reference))

	case StateValidator:
		text := m.validator.input.Value()
		if strings.TrimSpace(text) == "" {
			m.formError = swift.EmptyMessageError
			delete(m.results, m.state)
			return
		}
		if m.rejectAltered(&m.validator) {
			return
		}
		result := swift.Validate(text)
		m.results[m.state] = result.Report()
		status := "valid"
		if !result.Valid {
			status = "invalid"
		}
		m.addFormattedAction("Message Validated")
		m.addFormattedStatusIndented("Status", status)
		m.addFormattedStatusIndented("Type", string(result.MessageType))
		m.addFormattedStatusIndented("Errors", fmt.Sprint(len(result.Errors)))

	case StateParser:
		result, err := swift.Parse(m.parser.input.Value())
		if err != nil {
			m.formError = swift.EmptyParseError
			delete(m.results, m.state)
			return
		}
		if m.rejectAltered(&m.parser) {
			return
		}
		m.results[m.state] = result.Report()
		m.addFormattedAction("Message Parsed")
		m.addFormattedStatusIndented("Type", string(result.MessageType))
		m.addFormattedStatusIndented("Fields", fmt.Sprint(result.FieldCount))
		if len(result.Messages) > 1 {
			m.addFormattedStatusIndented("Messages", fmt.Sprint(len(result.Messages)))
		}

	case StateCodes:
		results, err := swift.ValidateCodes(m.codes.iban.Value(), m.codes.bic.Value())
		if err != nil {
			m.formError = swift.NoCodesError
			delete(m.results, m.state)
			return
		}
		m.results[m.state] = models.CodeReport(results)
		m.addFormattedAction("Codes Validated")
		for _, r := range results {
			status := "valid"
			if !r.Valid {
				status = "invalid"
			}
			m.addFormattedStatusIndented(r.Kind, status)
		}
	}
}

// alteredMessageError is shown when the editor no longer holds the text
// that was entered.
const alteredMessageError = "The editor changed this message (tabs become spaces and input stops at 9,999 lines). Use --validate FILE or --parse FILE instead."

// rejectAltered refuses to act on a draft the textarea has changed.
func (m *Model) rejectAltered(f *messageForm) bool {
	if !f.altered {
		return false
	}
	m.logger.Warn("refusing altered message", "view", m.state.String(), "lines", f.input.LineCount())
	m.formError = alteredMessageError
	delete(m.results, m.state)
	return true
}

// save exports the current result text as a file.
func (m *Model) save() {
	receipt, err := m.exporter.DownloadMessage(m.surfaces())
	if err != nil {
		m.formError = err.Error()
		return
	}
	if receipt.Location == "" {
		return
	}

	m.formError = ""
	m.addFormattedAction("Message Saved")
	m.addFormattedStatusIndented("File", receipt.Location)
	m.addFormattedStatusIndented("Size", utils.FormatFileSize(int64(receipt.Size)))
	m.addFormattedStatusIndented("Digest", utils.ShortDigest(receipt.Digest))
}
