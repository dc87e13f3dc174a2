package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/ethicsim/internal/catalog"
	"github.com/Iron-Ham/ethicsim/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const (
	homeTagline = "Simulate multi-agent debates on AI ethics in real-time. " +
		"Explore complex ethical dilemmas through diverse AI perspectives."
	homeWhy = "Understanding ethical implications of AI decisions requires exploring multiple perspectives. " +
		"Our simulator creates a safe space to examine complex moral questions before they impact the real world."
)

// sectionHeaderStyle returns the consistent style for section headers.
var sectionHeaderStyle = lipgloss.NewStyle().Bold(true)

// RenderHome renders the landing page with the onboarding stepper on step.
func RenderHome(step, width int) string {
	wrap := max(width-4, 20)
	var b strings.Builder

	b.WriteString(styles.Title.Render(AppTitle))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(wordwrap.String(homeTagline, wrap)))
	b.WriteString("\n\n")

	b.WriteString(sectionHeaderStyle.Foreground(styles.SecondaryColor).Render("▸ Why AI Ethics Simulation Matters"))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(wordwrap.String(homeWhy, wrap)))
	b.WriteString("\n\n")
	for _, f := range catalog.Features() {
		fmt.Fprintf(&b, "  %s %s  %s\n", f.Icon, styles.Text.Bold(true).Render(f.Title), styles.Muted.Render(f.Description))
	}
	b.WriteString("\n")

	b.WriteString(sectionHeaderStyle.Foreground(styles.SecondaryColor).Render("▸ How It Works"))
	b.WriteString("\n")
	b.WriteString(renderStepper(step, wrap))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpKey.Render("enter") + "  Begin your first simulation →")

	return styles.ContentBox.Width(max(width-2, 0)).Render(b.String())
}

func renderStepper(step, wrap int) string {
	steps := catalog.OnboardingSteps()
	if len(steps) == 0 {
		return ""
	}
	step = min(max(step, 0), len(steps)-1)

	dots := make([]string, len(steps))
	for i := range steps {
		if i == step {
			dots[i] = styles.Primary.Render("●")
		} else {
			dots[i] = styles.Muted.Render("○")
		}
	}

	current := steps[step]
	var b strings.Builder
	b.WriteString("  " + strings.Join(dots, " "))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", styles.Primary.Bold(true).Render(fmt.Sprintf("%d.", current.Number)), styles.Text.Bold(true).Render(current.Title))
	b.WriteString(indent(wordwrap.String(current.Description, wrap-4), "     "))

	nav := make([]string, 0, 2)
	if step > 0 {
		nav = append(nav, styles.HelpKey.Render("←")+" previous")
	}
	if step < len(steps)-1 {
		nav = append(nav, styles.HelpKey.Render("→")+" next")
	}
	if len(nav) > 0 {
		b.WriteString("\n  " + strings.Join(nav, "  "))
	}
	return b.String()
}

// indent prefixes every line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
