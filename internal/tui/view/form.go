package view

import (
	"strings"

	"github.com/Iron-Ham/ethicsim/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// FormField is one rendered row of the custom scenario form.
type FormField struct {
	Label string
	// Input is the rendered input (a textinput view or the current option).
	Input   string
	Focused bool
	// Choice marks fields cycled with ←/→ rather than typed.
	Choice bool
}

// RenderCustomForm renders the custom scenario form.
func RenderCustomForm(fields []FormField, width int) string {
	var b strings.Builder

	b.WriteString(styles.Primary.Bold(true).Render("Create Custom Scenario"))
	b.WriteString("\n\n")

	for _, f := range fields {
		label := styles.Muted.Render(f.Label + " *")
		if f.Focused {
			label = styles.Secondary.Bold(true).Render(f.Label + " *")
		}
		b.WriteString(label)
		b.WriteString("\n")

		input := f.Input
		if f.Choice {
			input = "‹ " + input + " ›"
		}
		if f.Focused {
			b.WriteString(styles.Primary.Render("> ") + input)
		} else {
			b.WriteString("  " + input)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("tab/shift+tab move between fields, ←/→ change a choice, ctrl+s saves, esc cancels"))

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.PrimaryColor).
		Padding(1, 2)
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(b.String())
}
