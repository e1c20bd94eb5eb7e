package artifact

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/zeebo/blake3"
)

const (
	// DefaultFilename is the name given to downloaded messages.
	DefaultFilename = "swift-message.txt"
	// ContentType is the media type of every exported artifact.
	ContentType = "text/plain"
	// CopiedNotice is shown once per successful clipboard write.
	CopiedNotice = "Message copied to clipboard!"
)

// Artifact is the blob handed to an export sink. It lives only for the
// duration of one export.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
}

// NewArtifact packages text as a plain-text artifact.
func NewArtifact(name, text string) Artifact {
	return Artifact{
		Name:        name,
		ContentType: ContentType,
		Data:        []byte(text),
	}
}

// Digest returns the hex BLAKE3-256 digest of the artifact's data.
func (a Artifact) Digest() string {
	sum := blake3.Sum256(a.Data)
	return hex.EncodeToString(sum[:])
}

// Clipboard writes text to the platform clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Saver stages an artifact for a user-visible save.
type Saver interface {
	Stage(a Artifact) (Handle, error)
}

// Handle is a staged artifact. Trigger performs the save and reports where
// the artifact ended up. Release frees the staging resource; it must be
// safe to call after a successful Trigger.
type Handle interface {
	Trigger() (string, error)
	Release() error
}

// Notifier tells the user about the outcome of an export.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// Task is a pending export. It blocks until the platform answers, so run it
// off the UI goroutine.
type Task func(ctx context.Context) Outcome

// Outcome is the result of running a Task.
type Outcome struct {
	Bytes int
	Err   error
}

// Receipt describes a completed file export.
type Receipt struct {
	Name     string
	Location string
	Size     int
	Digest   string
}

// Exporter moves the current result text out to the clipboard or a file.
type Exporter struct {
	clipboard Clipboard
	saver     Saver
	notifier  Notifier
	filename  string
	logger    *slog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithFilename overrides DefaultFilename.
func WithFilename(name string) Option {
	return func(e *Exporter) {
		if name != "" {
			e.filename = name
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func NewExporter(clipboard Clipboard, saver Saver, notifier Notifier, opts ...Option) *Exporter {
	e := &Exporter{
		clipboard: clipboard,
		saver:     saver,
		notifier:  notifier,
		filename:  DefaultFilename,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CopyMessage captures the output text and returns a task that writes it to
// the clipboard. It returns nil when there is no output to copy.
//
// A successful write produces exactly one notification. A failed write is
// only logged.
func (e *Exporter) CopyMessage(s Surfaces) Task {
	if s.Output == nil {
		e.logger.Debug("copy skipped, no output surface")
		return nil
	}
	text := s.Output.Text()

	return func(ctx context.Context) Outcome {
		if err := e.clipboard.WriteText(ctx, text); err != nil {
			e.logger.Error("failed to copy message to clipboard", "error", err, "bytes", len(text))
			return Outcome{Err: err}
		}
		e.notifier.Notify(CopiedNotice)
		return Outcome{Bytes: len(text)}
	}
}

// DownloadMessage saves the output text as a plain-text file. The staging
// handle is released before returning whatever happens to the save. With no
// output surface it returns a zero Receipt and no error.
func (e *Exporter) DownloadMessage(s Surfaces) (receipt Receipt, err error) {
	if s.Output == nil {
		e.logger.Debug("download skipped, no output surface")
		return Receipt{}, nil
	}
	a := NewArtifact(e.filename, s.Output.Text())

	handle, err := e.saver.Stage(a)
	if err != nil {
		e.logger.Error("failed to stage message", "name", a.Name, "error", err)
		return Receipt{}, fmt.Errorf("staging %s: %w", a.Name, err)
	}
	defer func() {
		if releaseErr := handle.Release(); releaseErr != nil {
			e.logger.Warn("failed to release staged message", "name", a.Name, "error", releaseErr)
		}
	}()

	location, err := handle.Trigger()
	if err != nil {
		e.logger.Error("failed to save message", "name", a.Name, "error", err)
		return Receipt{}, fmt.Errorf("saving %s: %w", a.Name, err)
	}

	e.logger.Info("message saved", "location", location, "bytes", len(a.Data))
	return Receipt{
		Name:     filepath.Base(location),
		Location: location,
		Size:     len(a.Data),
		Digest:   a.Digest(),
	}, nil
}

// Go runs task on its own goroutine. The returned channel yields the single
// outcome and is then closed. A nil task yields nothing.
func Go(ctx context.Context, task Task) <-chan Outcome {
	done := make(chan Outcome, 1)
	if task == nil {
		close(done)
		return done
	}
	go func() {
		defer close(done)
		done <- task(ctx)
	}()
	return done
}
