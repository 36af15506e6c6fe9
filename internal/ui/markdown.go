package ui

import (
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/charmbracelet/glamour"
)

// renderBody formats a note body for display. With markdown off, or when
// both renderers fail, the text is shown as typed.
func renderBody(text string, width int, renderMarkdown bool, style string) string {
	if !renderMarkdown || strings.TrimSpace(text) == "" {
		return text
	}
	if width < 10 {
		width = 10
	}
	if out, err := renderGlamour(text, width, style); err == nil {
		return strings.TrimRight(out, "\n")
	}
	return renderTermMarkdown(text, width)
}

func renderGlamour(text string, width int, style string) (string, error) {
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}

func renderTermMarkdown(text string, width int) (out string) {
	defer func() {
		if recover() != nil {
			out = text
		}
	}()
	return strings.TrimRight(string(markdown.Render(text, width, 0)), "\n")
}
