package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"swift-workbench/models"
	"swift-workbench/swift"
)

// Composer fields, in focus order
const (
	fieldType = iota
	fieldReference
	fieldAccount
	fieldBalance
	fieldDetails
	fieldCount
)

var composerLabels = [fieldCount]string{
	"Message Type",
	"Reference Number",
	"Account Number",
	"Amount / Balance",
	"Description",
}

var composerPlaceholders = [fieldCount]string{
	"MT940 | MT101 | MT103 | MT104",
	"e.g., TEST123456",
	"e.g., 1234567890/DE1234567890",
	"e.g., 160101EUR1000,00",
	"details, or date/reference for MT104",
}

type composerForm struct {
	inputs   []textinput.Model
	defaults [fieldCount]string
	focus    int
}

func newComposerForm(defaultType models.MessageType) composerForm {
	f := composerForm{}
	f.defaults[fieldType] = string(defaultType)

	for i := 0; i < fieldCount; i++ {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = composerPlaceholders[i]
		in.Width = 40
		f.inputs = append(f.inputs, in)
	}
	f.Reset()
	return f
}

// Reset restores every field to its default and focuses the first one.
func (f *composerForm) Reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue(f.defaults[i])
		f.inputs[i].Blur()
	}
	f.focus = fieldType
	f.inputs[f.focus].Focus()
}

func (f *composerForm) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
}

func (f *composerForm) setWidth(width int) {
	for i := range f.inputs {
		f.inputs[i].Width = width
	}
}

func (f composerForm) request() swift.ComposeRequest {
	return swift.ComposeRequest{
		MessageType: f.inputs[fieldType].Value(),
		Reference:   f.inputs[fieldReference].Value(),
		Account:     f.inputs[fieldAccount].Value(),
		Balance:     f.inputs[fieldBalance].Value(),
		Details:     f.inputs[fieldDetails].Value(),
	}
}

func (f composerForm) update(msg tea.Msg) (composerForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// editorLineLimit is the line count at which the textarea stops accepting
// new lines.
const editorLineLimit = 9999

// messageForm wraps the message input of the validator and parser views.
// Its default state is an empty message.
type messageForm struct {
	input textarea.Model

	// altered is set once the textarea may hold something other than what
	// was entered: tabs are replaced by spaces and lines past
	// editorLineLimit are dropped.
	altered bool
}

func newMessageForm(placeholder string) messageForm {
	area := textarea.New()
	area.Placeholder = placeholder
	area.ShowLineNumbers = false
	area.CharLimit = 0
	area.MaxHeight = 0
	area.SetWidth(60)
	area.SetHeight(10)
	area.Focus()
	return messageForm{input: area}
}

func (f *messageForm) Reset() {
	f.input.Reset()
	f.altered = false
}

func (f messageForm) update(msg tea.Msg) (messageForm, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		if k.Type == tea.KeyTab || (k.Type == tea.KeyRunes && strings.ContainsRune(string(k.Runes), '\t')) {
			f.altered = true
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.LineCount() >= editorLineLimit {
		f.altered = true
	}
	if f.input.Value() == "" {
		f.altered = false
	}
	return f, cmd
}

// textareaSurface exposes a message form as the draft input. Text that the
// textarea cannot hold unchanged marks the form as altered.
type textareaSurface struct {
	form   *messageForm
	logger *slog.Logger
}

func (s textareaSurface) Text() string { return s.form.input.Value() }

func (s textareaSurface) SetText(text string) {
	s.form.input.SetValue(text)
	got := s.form.input.Value()
	s.form.altered = got != text
	if s.form.altered {
		s.logger.Warn("editor changed message text",
			"in_bytes", len(text),
			"out_bytes", len(got),
			"lines", s.form.input.LineCount(),
		)
	}
}

// codeForm holds the IBAN and BIC inputs of the code validator view.
type codeForm struct {
	iban  textinput.Model
	bic   textinput.Model
	focus int
}

func newCodeForm() codeForm {
	iban := textinput.New()
	iban.Prompt = ""
	iban.Placeholder = "e.g., " + swift.SampleIBAN
	iban.CharLimit = 34
	iban.Width = 40

	bic := textinput.New()
	bic.Prompt = ""
	bic.Placeholder = "e.g., " + swift.SampleBIC
	bic.CharLimit = 11
	bic.Width = 40

	f := codeForm{iban: iban, bic: bic}
	f.Reset()
	return f
}

// Reset clears both codes and focuses the IBAN input.
func (f *codeForm) Reset() {
	f.iban.SetValue("")
	f.bic.SetValue("")
	f.focus = 0
	f.iban.Focus()
	f.bic.Blur()
}

func (f *codeForm) loadSample() {
	f.iban.SetValue(swift.SampleIBAN)
	f.bic.SetValue(swift.SampleBIC)
}

func (f *codeForm) toggle() {
	f.focus = 1 - f.focus
	if f.focus == 0 {
		f.bic.Blur()
		f.iban.Focus()
	} else {
		f.iban.Blur()
		f.bic.Focus()
	}
}

func (f codeForm) update(msg tea.Msg) (codeForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.iban, cmd = f.iban.Update(msg)
	} else {
		f.bic, cmd = f.bic.Update(msg)
	}
	return f, cmd
}
