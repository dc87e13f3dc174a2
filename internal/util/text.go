// Package util provides text helpers shared by the terminal renderers.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks text that was cut short.
const Ellipsis = "..."

// Truncate shortens s to maxWidth visual columns, ending in Ellipsis when
// anything was cut. Escape sequences and wide characters are measured by
// their rendered width, so styled text can be passed in.
func Truncate(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= len(Ellipsis) {
		return Ellipsis
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// ClampLines keeps at most n lines of s, each no wider than width. When
// lines are dropped the last kept line ends in Ellipsis.
func ClampLines(s string, n, width int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	dropped := len(lines) > n
	if dropped {
		lines = lines[:n]
	}
	for i, line := range lines {
		lines[i] = Truncate(line, width)
	}
	if dropped {
		last := lines[n-1]
		if lipgloss.Width(last)+len(Ellipsis) > width {
			last = ansi.Truncate(last, max(width-len(Ellipsis), 0), "")
		}
		lines[n-1] = strings.TrimRight(last, " ") + Ellipsis
	}
	return strings.Join(lines, "\n")
}
