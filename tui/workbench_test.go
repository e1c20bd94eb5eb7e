package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"swift-workbench/artifact"
	"swift-workbench/swift"
	"swift-workbench/utils"
)

func openState(t *testing.T, m Model, choice int) Model {
	t.Helper()
	msgs := make([]tea.Msg, 0, choice+1)
	for i := 0; i < choice; i++ {
		msgs = append(msgs, keyMsg(tea.KeyDown))
	}
	msgs = append(msgs, keyMsg(tea.KeyEnter))
	m, _ = send(t, m, msgs...)
	return m
}

func TestMenuChoices(t *testing.T) {
	tests := []struct {
		choice int
		want   AppState
	}{
		{0, StateComposer},
		{1, StateValidator},
		{2, StateParser},
		{3, StateCodes},
		{4, StateDocs},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			m, _ := newTestModel(t, &fakeClipboard{})
			m = openState(t, m, tt.choice)
			if m.state != tt.want {
				t.Errorf("state = %v, want %v", m.state, tt.want)
			}
		})
	}

	t.Run("exit", func(t *testing.T) {
		m, _ := newTestModel(t, &fakeClipboard{})
		for i := 0; i < len(m.choices)-1; i++ {
			m, _ = send(t, m, keyMsg(tea.KeyDown))
		}
		_, cmd := send(t, m, keyMsg(tea.KeyEnter))
		if cmd == nil {
			t.Fatal("expected quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("exit did not quit")
		}
	})
}

func TestEmptyDraftMessages(t *testing.T) {
	tests := []struct {
		choice int
		want   string
	}{
		{1, swift.EmptyMessageError},
		{2, swift.EmptyParseError},
	}

	for _, tt := range tests {
		m, _ := newTestModel(t, &fakeClipboard{})
		m = openState(t, m, tt.choice)
		m, _ = send(t, m, keyMsg(tea.KeyCtrlS))
		if m.formError != tt.want {
			t.Errorf("form error = %q, want %q", m.formError, tt.want)
		}
	}
}

func TestEditorRejectsTypedTab(t *testing.T) {
	m, _ := newTestModel(t, &fakeClipboard{})
	m = openState(t, m, 1)

	m, _ = send(t, m, typed("{4:\n:20:A\tB\n-}"), keyMsg(tea.KeyCtrlS))
	if m.formError != alteredMessageError {
		t.Fatalf("form error = %q", m.formError)
	}
	if _, ok := m.results[StateValidator]; ok {
		t.Error("altered draft produced a result")
	}

	m, _ = send(t, m, keyMsg(tea.KeyCtrlK), keyMsg(tea.KeyCtrlL), keyMsg(tea.KeyCtrlS))
	if m.formError != "" {
		t.Fatalf("form error after clear = %q", m.formError)
	}
	if _, ok := m.results[StateValidator]; !ok {
		t.Error("sample produced no result")
	}
}

func TestEditorSetTextFidelity(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantAltered bool
	}{
		{"sample", artifact.SampleMessage, false},
		{"tab", "{4:\n:20:A\tB\n-}", true},
		{"carriage returns", "{4:\r\n:20:X\r\n-}", true},
		{"over line limit", strings.Repeat(":20:X\n", 12000), true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, &fakeClipboard{})
			m = openState(t, m, 2)

			m.surfaces().Input.SetText(tt.text)
			if m.parser.altered != tt.wantAltered {
				t.Fatalf("altered = %v, want %v", m.parser.altered, tt.wantAltered)
			}

			m, _ = send(t, m, keyMsg(tea.KeyCtrlS))
			if tt.wantAltered {
				if m.formError != alteredMessageError {
					t.Errorf("form error = %q", m.formError)
				}
				if _, ok := m.results[StateParser]; ok {
					t.Error("altered draft produced a result")
				}
			}
		})
	}
}

func TestLoadFilePrompt(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "statement.MT940")
	if err := os.WriteFile(good, []byte(artifact.SampleMessage), 0o644); err != nil {
		t.Fatal(err)
	}
	badExt := filepath.Join(dir, "statement.pdf")
	if err := os.WriteFile(badExt, []byte(artifact.SampleMessage), 0o644); err != nil {
		t.Fatal(err)
	}
	large := filepath.Join(dir, "large.txt")
	if err := os.WriteFile(large, make([]byte, utils.MaxMessageFileSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		path      string
		wantDraft string
		wantError string
	}{
		{"message file", good, artifact.SampleMessage, ""},
		{"unsupported extension", badExt, "draft", "unsupported file type"},
		{"too large", large, "draft", "file too large"},
		{"missing", filepath.Join(dir, "missing.txt"), "draft", "does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, &fakeClipboard{})
			m = openState(t, m, 1)
			m, _ = send(t, m, typed("draft"), keyMsg(tea.KeyCtrlF))
			if !m.promptingFile {
				t.Fatal("ctrl+f did not open the file prompt")
			}

			m, _ = send(t, m, typed(tt.path), keyMsg(tea.KeyEnter))
			if m.promptingFile {
				t.Error("prompt still open")
			}
			if got := m.validator.input.Value(); got != tt.wantDraft {
				t.Errorf("draft = %q, want %q", got, tt.wantDraft)
			}
			if tt.wantError == "" {
				if m.formError != "" {
					t.Errorf("form error = %q", m.formError)
				}
				if !strings.Contains(strings.Join(m.outputSummary, "\n"), "File Loaded") {
					t.Error("summary missing file entry")
				}
			} else if !strings.Contains(m.formError, tt.wantError) {
				t.Errorf("form error = %q, want %q", m.formError, tt.wantError)
			}
		})
	}
}

func TestLoadFilePromptCancel(t *testing.T) {
	m, _ := newTestModel(t, &fakeClipboard{})
	m = openState(t, m, 2)
	m, _ = send(t, m, keyMsg(tea.KeyCtrlF), typed("x.txt"), keyMsg(tea.KeyEsc))

	if m.promptingFile {
		t.Error("esc left the prompt open")
	}
	if m.state != StateParser {
		t.Errorf("state = %v, want parser", m.state)
	}
	if got := m.parser.input.Value(); got != "" {
		t.Errorf("draft = %q", got)
	}
}

func TestCodesView(t *testing.T) {
	m, _ := newTestModel(t, &fakeClipboard{})
	m = openState(t, m, 3)

	m, _ = send(t, m, keyMsg(tea.KeyCtrlS))
	if m.formError != swift.NoCodesError {
		t.Errorf("form error = %q", m.formError)
	}

	m, _ = send(t, m, keyMsg(tea.KeyCtrlL), keyMsg(tea.KeyCtrlS))
	report := m.results[StateCodes]
	for _, want := range []string{"IBAN: " + swift.SampleIBAN, "BIC: " + swift.SampleBIC, "Status: VALID"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if strings.Contains(report, "INVALID") {
		t.Errorf("sample codes reported invalid:\n%s", report)
	}

	m, _ = send(t, m, keyMsg(tea.KeyCtrlK))
	if m.codes.iban.Value() != "" || m.codes.bic.Value() != "" {
		t.Error("clear left codes behind")
	}
	if _, ok := m.results[StateCodes]; ok {
		t.Error("clear left the result behind")
	}

	m, _ = send(t, m, keyMsg(tea.KeyTab), typed("DEUT"), keyMsg(tea.KeyCtrlS))
	if got := m.codes.bic.Value(); got != "DEUT" {
		t.Fatalf("bic = %q", got)
	}
	if report := m.results[StateCodes]; !strings.Contains(report, "BIC: DEUT\nStatus: INVALID") {
		t.Errorf("unexpected report %q", report)
	}
}

func TestDocsView(t *testing.T) {
	m, _ := newTestModel(t, &fakeClipboard{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 200, Height: 120})
	m = openState(t, m, 4)

	view := m.View()
	for _, want := range []string{"MT942", "Interim Transaction Report", ":20:", "ctrl+f"} {
		if !strings.Contains(view, want) {
			t.Errorf("docs view missing %q", want)
		}
	}

	m, _ = send(t, m, keyMsg(tea.KeyEsc))
	if m.state != StateMenu {
		t.Errorf("state = %v, want menu", m.state)
	}
}

func TestSummaryScrollLimit(t *testing.T) {
	m, _ := newTestModel(t, &fakeClipboard{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 140, Height: 30})
	for i := 0; i < 40; i++ {
		m.addToOutputSummary(fmt.Sprintf("entry %d", i))
	}

	for i := 0; i < 20; i++ {
		m, _ = send(t, m, keyMsg(tea.KeyPgDown))
	}
	if want := 40 - m.summaryVisibleLines(); m.outputScrollOffset != want {
		t.Errorf("offset = %d, want %d", m.outputScrollOffset, want)
	}

	m, _ = send(t, m, keyMsg(tea.KeyPgUp))
	if want := 40 - m.summaryVisibleLines() - 5; m.outputScrollOffset != want {
		t.Errorf("offset after pgup = %d, want %d", m.outputScrollOffset, want)
	}
}

func TestScrollKeysWithHiddenSummary(t *testing.T) {
	m, _ := newTestModel(t, &fakeClipboard{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	m = openState(t, m, 1)

	m, _ = send(t, m, typed("abc"), keyMsg(tea.KeyCtrlD), keyMsg(tea.KeyCtrlU))
	if got := m.validator.input.Value(); got != "abc" {
		t.Errorf("draft = %q, want %q", got, "abc")
	}
	if m.outputScrollOffset != 0 {
		t.Errorf("offset = %d", m.outputScrollOffset)
	}
}
