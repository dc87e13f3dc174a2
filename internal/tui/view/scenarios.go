package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/ethicsim/internal/catalog"
	"github.com/Iron-Ham/ethicsim/internal/tui/styles"
	"github.com/Iron-Ham/ethicsim/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// NoScenariosText is shown when the filters match nothing.
const NoScenariosText = "No scenarios match your search."

// ScenarioListState holds what the scenario page needs to render.
type ScenarioListState struct {
	Scenarios []catalog.Scenario
	Cursor    int
	// Offset and Limit select the visible cards; Limit 0 shows all.
	Offset     int
	Limit      int
	Categories []string
	Category   string
	// SearchInput is the rendered search box.
	SearchInput string
	// Form is the rendered custom scenario form, empty when closed.
	Form  string
	Width int
}

// RenderScenarioList renders the scenario selection page.
func RenderScenarioList(s ScenarioListState) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Choose Your Ethical Scenario"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(wordwrap.String(
		"Select a pre-built ethical dilemma or create your own custom scenario for AI agents to debate.",
		max(s.Width-4, 20),
	)))
	b.WriteString("\n\n")

	b.WriteString("🔍 " + s.SearchInput)
	b.WriteString("\n")
	b.WriteString(renderCategoryChips(s.Categories, s.Category))
	b.WriteString("\n\n")

	if s.Form != "" {
		b.WriteString(s.Form)
		b.WriteString("\n")
		return b.String()
	}

	if len(s.Scenarios) == 0 {
		b.WriteString(styles.Muted.Render(NoScenariosText))
		b.WriteString("\n")
		return b.String()
	}

	start, end := Window(len(s.Scenarios), s.Offset, s.Limit)
	if start > 0 {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(RenderScenarioCard(s.Scenarios[i], i == s.Cursor, s.Width))
		b.WriteString("\n")
	}
	if end < len(s.Scenarios) {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("↓ %d more", len(s.Scenarios)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCategoryChips(categories []string, active string) string {
	chips := make([]string, 0, len(categories))
	for _, cat := range categories {
		if cat == active {
			chips = append(chips, styles.TabActive.Render(cat))
		} else {
			chips = append(chips, styles.TabInactive.Render(cat))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// cardDescriptionLines is how many description lines a scenario card shows.
const cardDescriptionLines = 2

// RenderScenarioCard renders one scenario. The selected card gets the accent
// border.
func RenderScenarioCard(sc catalog.Scenario, selected bool, width int) string {
	inner := max(width-6, 20)
	var b strings.Builder

	b.WriteString(styles.ToneBadge("", sc.Category))
	b.WriteString(styles.ToneBadge(sc.Difficulty.Tone(), string(sc.Difficulty)))
	b.WriteString("\n")
	b.WriteString(styles.Text.Bold(true).Render(util.Truncate(sc.Title, inner)))
	b.WriteString("\n")
	// Cards keep a fixed height so the list window can count them.
	b.WriteString(styles.Muted.Render(util.ClampLines(wordwrap.String(sc.Description, inner), cardDescriptionLines, inner)))
	if len(sc.Participants) > 0 {
		b.WriteString("\n")
		b.WriteString(util.Truncate(fmt.Sprintf("Participants: %s", strings.Join(sc.Participants, ", ")), inner))
	}

	card := styles.Card
	if selected {
		card = styles.CardActive
	}
	return card.Width(max(width-2, 0)).Render(b.String())
}

// Window clamps offset and limit to n items and returns the visible range.
// A non-positive limit shows everything.
func Window(n, offset, limit int) (start, end int) {
	if limit <= 0 || limit >= n {
		return 0, n
	}
	start = min(max(offset, 0), n-limit)
	return start, start + limit
}

// ScrollOffset returns the offset that keeps cursor inside a window of limit
// items starting at offset.
func ScrollOffset(cursor, offset, limit int) int {
	if limit <= 0 {
		return 0
	}
	if cursor < offset {
		return max(cursor, 0)
	}
	if cursor >= offset+limit {
		return cursor - limit + 1
	}
	return offset
}
