package view

import (
	"strings"

	"github.com/Iron-Ham/ethicsim/internal/event"
	"github.com/Iron-Ham/ethicsim/internal/store"
	"github.com/Iron-Ham/ethicsim/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// AppTitle is shown in the breadcrumb and on the home page.
const AppTitle = "AI Ethics Simulator"

var pageLabels = map[store.Page]string{
	store.PageHome:        "Home",
	store.PageScenario:    "Scenario",
	store.PageAgentConfig: "Agents",
	store.PageDebate:      "Debate",
	store.PageResults:     "Results",
}

// PageLabel returns the short label for page.
func PageLabel(page store.Page) string {
	if label, ok := pageLabels[page]; ok {
		return label
	}
	return string(page)
}

// RenderBreadcrumb renders the page trail with current highlighted.
func RenderBreadcrumb(current store.Page, width int) string {
	tabs := make([]string, 0, len(store.Pages()))
	for _, page := range store.Pages() {
		if page == current {
			tabs = append(tabs, styles.TabActive.Render(PageLabel(page)))
		} else {
			tabs = append(tabs, styles.TabInactive.Render(PageLabel(page)))
		}
	}
	title := styles.Primary.Bold(true).Render(AppTitle)
	trail := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	gap := width - lipgloss.Width(title) - lipgloss.Width(trail)
	if gap < 2 {
		return title + "\n" + trail
	}
	return title + strings.Repeat(" ", gap) + trail
}

// RenderNotice renders a notification banner.
func RenderNotice(level event.NotificationLevel, message string, width int) string {
	style := styles.Notice
	if level == event.NotificationWarning {
		style = styles.NoticeWarning
	}
	if width > 0 {
		style = style.MaxWidth(width)
	}
	return style.Render(message)
}
