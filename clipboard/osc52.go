// Package clipboard copies text to the system clipboard through the
// terminal, using the OSC 52 escape sequence. This works over SSH and
// inside tmux or screen, where no local clipboard tool is reachable.
package clipboard

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// DefaultTTY is the controlling terminal. Writing there bypasses the TUI
// renderer; the sequence has no visible effect on screen.
const DefaultTTY = "/dev/tty"

// OSC52 writes clipboard sequences to a terminal device.
type OSC52 struct {
	tty    string
	getenv func(string) string
	open   func(path string) (io.WriteCloser, error)
}

// New returns an OSC52 clipboard writing to tty, or DefaultTTY when tty is
// empty.
func New(tty string) *OSC52 {
	if tty == "" {
		tty = DefaultTTY
	}
	return &OSC52{
		tty:    tty,
		getenv: os.Getenv,
		open: func(path string) (io.WriteCloser, error) {
			return os.OpenFile(path, os.O_WRONLY, 0)
		},
	}
}

// WriteText sets the clipboard to text. It fails when the terminal cannot
// be opened, e.g. when running without a controlling TTY.
func (c *OSC52) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := c.open(c.tty)
	if err != nil {
		return fmt.Errorf("opening %s: %w", c.tty, err)
	}
	defer out.Close()

	for _, seq := range c.sequences(text) {
		if _, err := seq.WriteTo(out); err != nil {
			return fmt.Errorf("writing clipboard sequence: %w", err)
		}
	}
	return nil
}

// sequences picks the escape sequences for the current multiplexer. Under
// tmux both the passthrough and the direct form are sent so either
// allow-passthrough or set-clipboard configurations pick it up.
func (c *OSC52) sequences(text string) []osc52.Sequence {
	direct := osc52.New(text)
	term := c.getenv("TERM")

	switch {
	case c.getenv("TMUX") != "" || strings.HasPrefix(term, "tmux"):
		return []osc52.Sequence{direct.Tmux(), direct}
	case c.getenv("STY") != "" || strings.HasPrefix(term, "screen"):
		return []osc52.Sequence{direct.Screen()}
	}
	return []osc52.Sequence{direct}
}
