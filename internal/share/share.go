// Package share sends note text out of the application.
package share

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Sharer hands text to something outside the program.
type Sharer interface {
	Share(text string) error
}

// ClipboardSharer copies text to the system clipboard. When no clipboard
// utility is available, as over SSH, it emits an OSC 52 sequence so the
// terminal emulator can set the clipboard instead.
type ClipboardSharer struct {
	// Terminal receives OSC 52 sequences. Defaults to os.Stderr.
	Terminal io.Writer

	writeClipboard func(string) error
	unsupported    bool
}

// NewClipboardSharer returns a sharer backed by the system clipboard.
func NewClipboardSharer() *ClipboardSharer {
	return &ClipboardSharer{
		Terminal:       os.Stderr,
		writeClipboard: clipboard.WriteAll,
		unsupported:    clipboard.Unsupported,
	}
}

func (c *ClipboardSharer) Share(text string) error {
	if !c.unsupported && c.writeClipboard != nil {
		if err := c.writeClipboard(text); err == nil {
			return nil
		}
	}
	return c.writeOSC52(text)
}

func (c *ClipboardSharer) writeOSC52(text string) error {
	w := c.Terminal
	if w == nil {
		w = os.Stderr
	}
	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(w); err != nil {
		return fmt.Errorf("write osc52 sequence: %w", err)
	}
	return nil
}

// WriterSharer writes the text followed by a newline to W. The CLI uses it
// to print notes on stdout.
type WriterSharer struct {
	W io.Writer
}

func (s WriterSharer) Share(text string) error {
	if _, err := fmt.Fprintln(s.W, text); err != nil {
		return fmt.Errorf("write note: %w", err)
	}
	return nil
}
