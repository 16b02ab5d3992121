package renderer

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const defaultWordWrap = 100

// Terminal styles markdown for a terminal with a glamour standard style
// such as "dark", "light", "ascii" or "notty". An empty style returns the
// markdown unchanged.
func Terminal(markdown, style string) (string, error) {
	if style == "" {
		return markdown, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(defaultWordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("renderer: style %q: %w", style, err)
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("renderer: %w", err)
	}
	return out, nil
}
