package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/Iron-Ham/ethicsim/internal/config"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
)

// defaultWidth is used when the output is not a terminal.
const defaultWidth = 80

// outputWidth returns the column count headless output wraps at. A
// configured wrap width wins, then the terminal width of w.
func outputWidth(w io.Writer, cfg *config.Config) int {
	if cfg != nil && cfg.TUI.WrapWidth > 0 {
		return cfg.TUI.WrapWidth
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultWidth
}

// wrapIndent word-wraps text to width and indents every line by prefix.
func wrapIndent(text, prefix string, width int) string {
	limit := max(width-len(prefix), 20)
	lines := strings.Split(wordwrap.String(text, limit), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
