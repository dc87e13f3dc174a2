package tui

import (
	"fmt"
	"path/filepath"

	"github.com/Iron-Ham/ethicsim/internal/debate"
	"github.com/Iron-Ham/ethicsim/internal/event"
	"github.com/Iron-Ham/ethicsim/internal/store"
	"github.com/Iron-Ham/ethicsim/internal/tui/view"
	tea "github.com/charmbracelet/bubbletea"
)

// prepareDebate scripts a new run for req. Playback waits for the user to
// press start, as on the debate page of the browser app.
func (m *Model) prepareDebate(req store.DebateRequest) {
	m.abandonDebate()

	seq, err := debate.NewSequencer(req.Scenario, req.Agents,
		debate.WithRandom(m.newRandom()),
		debate.WithBus(m.bus),
		debate.WithLogger(m.logger),
	)
	if err != nil {
		m.logger.Warn("debate not scripted", "error", err.Error())
		m.store.ReportError(err)
		m.store.SetPage(store.PageAgentConfig)
		return
	}

	m.seq = seq
	m.interval = m.cfg.Debate.TickInterval()
	m.resize()
	m.refreshViewport()
}

// playing reports whether reveals are in progress.
func (m Model) playing() bool {
	return m.seq != nil && m.seq.State() == debate.StateRevealing
}

// startPlayback reveals the first message and starts the tick chain. It is
// a no-op unless the run is waiting to start.
func (m *Model) startPlayback() tea.Cmd {
	if m.seq == nil || m.seq.State() != debate.StateAwaitingStart {
		return nil
	}
	return tea.Batch(m.advance(), m.spinner.Tick)
}

// advance performs one sequencer transition. A reveal schedules the next
// tick; the result moves to the results page.
func (m *Model) advance() tea.Cmd {
	step, err := m.seq.Next()
	if err != nil {
		m.logger.Debug("reveal skipped", "error", err.Error())
		return nil
	}

	if step.Done() {
		m.result = step.Result
		m.showTranscript = false
		m.store.SetPage(store.PageResults)
		m.resize()
		m.refreshViewport()
		m.viewport.GotoTop()
		return nil
	}

	m.reveals = append(m.reveals, *step.Reveal)
	m.refreshViewport()
	m.viewport.GotoBottom()
	return revealTick(m.seq.ID(), m.interval)
}

// abandonDebate cancels any run and forgets its state. Ticks already in
// flight for it are ignored because the run ID no longer matches.
func (m *Model) abandonDebate() {
	if m.seq != nil {
		m.seq.Cancel()
	}
	m.seq = nil
	m.reveals = nil
	m.result = nil
	m.showTranscript = false
}

// exportTranscript writes the completed run as YAML into the export
// directory.
func (m *Model) exportTranscript() {
	if m.seq == nil {
		return
	}
	transcript, err := m.seq.Transcript()
	if err != nil {
		m.logger.Warn("transcript export refused", "error", err.Error())
		m.store.Notify(event.NotificationWarning, "Transcript is only available once the debate is complete.")
		return
	}

	path := filepath.Join(m.exportDir, fmt.Sprintf("ethicsim-%s.yaml", transcript.RunID))
	if err := transcript.WriteFile(path); err != nil {
		m.logger.Error("transcript export failed", "path", path, "error", err.Error())
		m.store.Notify(event.NotificationWarning, "Could not export transcript: "+err.Error())
		return
	}
	m.logger.Info("transcript exported", "path", path)
	m.store.Notify(event.NotificationInfo, "Transcript exported to "+path)
}

// refreshViewport re-renders the scrollable content for the current page.
func (m *Model) refreshViewport() {
	switch m.store.Page() {
	case store.PageDebate:
		m.viewport.SetContent(view.RenderChat(m.reveals, m.chatWidth()))
	case store.PageResults:
		if m.result == nil {
			m.viewport.SetContent("")
			return
		}
		md := view.ResultsMarkdown(m.seq.Agents(), *m.result)
		if m.showTranscript {
			md = view.TranscriptMarkdown(m.seq.Rounds())
		}
		m.viewport.SetContent(view.RenderMarkdown(md, m.chatWidth()))
	}
}
