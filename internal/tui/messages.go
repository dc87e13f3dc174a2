package tui

import (
	"time"

	"github.com/Iron-Ham/ethicsim/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages

// revealTickMsg asks the sequencer of run runID for its next step. Ticks for
// any other run are stale and ignored.
type revealTickMsg struct {
	runID string
}

// clearNoticeMsg hides notice id if it is still the one shown.
type clearNoticeMsg struct {
	id int
}

// configChangedMsg carries a reloaded configuration.
type configChangedMsg struct {
	cfg *config.Config
}

// Commands

func revealTick(runID string, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return revealTickMsg{runID: runID}
	})
}

func clearNotice(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}
