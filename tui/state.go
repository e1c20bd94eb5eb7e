package tui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"swift-workbench/artifact"
	"swift-workbench/models"
)

// AppState represents the current state of the application
type AppState int

const (
	StateMenu AppState = iota
	StateComposer
	StateValidator
	StateParser
	StateCodes
	StateDocs
)

// Options wires the model to its export sinks.
type Options struct {
	Config    models.Config
	Clipboard artifact.Clipboard
	Saver     artifact.Saver
	Logger    *slog.Logger
}

// Model represents the main TUI model
type Model struct {
	state  AppState
	width  int
	height int

	// Pane layout
	leftPaneWidth  int
	rightPaneWidth int
	showRightPane  bool

	cfg      models.Config
	keys     KeyMap
	logger   *slog.Logger
	exporter *artifact.Exporter
	notices  *noticeQueue

	// Forms
	composer  composerForm
	validator messageForm
	parser    messageForm
	codes     codeForm

	// File prompt of the validator and parser views
	filePrompt    textinput.Model
	promptingFile bool

	// Result text per view. A view with no entry has no output to export.
	results map[AppState]string

	// Feedback
	formError string
	notice    string
	noticeSeq int

	// Output summary for right pane
	outputSummary      []string
	outputScrollOffset int

	// Menu
	cursor  int
	choices []string
}

// NewModel creates a new TUI model
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid configuration, using defaults", "error", err)
		cfg = models.DefaultConfig
	}

	notices := newNoticeQueue()
	exporter := artifact.NewExporter(opts.Clipboard, opts.Saver, notices,
		artifact.WithFilename(cfg.Filename),
		artifact.WithLogger(logger),
	)

	return Model{
		state:         StateMenu,
		cfg:           cfg,
		keys:          DefaultKeyMap,
		logger:        logger,
		exporter:      exporter,
		notices:       notices,
		composer:      newComposerForm(cfg.DefaultMessageType),
		validator:     newMessageForm("Paste a SWIFT message to validate..."),
		parser:        newMessageForm("Paste a SWIFT message to parse..."),
		codes:         newCodeForm(),
		filePrompt:    newFilePrompt(),
		results:       make(map[AppState]string),
		outputSummary: []string{},
		choices:       []string{
			"Compose Message",
			"Validate Message",
			"Parse Message",
			"Validate IBAN/BIC",
			"Documentation",
			"Exit",
		},
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.notices.listen()
}

// surfaces resolves the surfaces rendered by the current view. It must be
// called on the model value that will be returned from Update.
func (m *Model) surfaces() artifact.Surfaces {
	var s artifact.Surfaces
	switch m.state {
	case StateComposer:
		s.Composer = &m.composer
	case StateValidator:
		s.Input = textareaSurface{form: &m.validator, logger: m.logger}
		s.Validator = &m.validator
	case StateParser:
		s.Input = textareaSurface{form: &m.parser, logger: m.logger}
	case StateCodes:
		s.Validator = &m.codes
	}
	if text, ok := m.results[m.state]; ok {
		s.Output = artifact.StaticText(text)
	}
	return s
}

func newFilePrompt() textinput.Model {
	in := textinput.New()
	in.Prompt = "File: "
	in.Placeholder = "path to a .txt, .swift, .mt940, .mt942 or .mt101 file"
	in.Width = 50
	return in
}

func (s AppState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateComposer:
		return "composer"
	case StateValidator:
		return "validator"
	case StateParser:
		return "parser"
	case StateCodes:
		return "codes"
	case StateDocs:
		return "docs"
	}
	return "unknown"
}
