// Package keymap defines the TUI key bindings. Bindings are grouped by input
// mode so each page only reacts to, and advertises, the keys that make sense
// there.
package keymap

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeHome       Mode = "home"        // Onboarding stepper
	ModeScenarios  Mode = "scenarios"   // Scenario list
	ModeSearch     Mode = "search"      // Typing a search term (after /)
	ModeCustomForm Mode = "custom_form" // Custom scenario form is open
	ModeAgents     Mode = "agents"      // Agent selection
	ModeDebate     Mode = "debate"      // Debate playback
	ModeResults    Mode = "results"     // Results summary
)

// Modes returns every mode in display order.
func Modes() []Mode {
	return []Mode{ModeHome, ModeScenarios, ModeSearch, ModeCustomForm, ModeAgents, ModeDebate, ModeResults}
}

// KeyMap holds every binding the TUI understands.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding

	// Home
	PrevStep key.Binding
	NextStep key.Binding
	Begin    key.Binding

	// Lists
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding

	// Scenarios
	Search       key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	NewScenario  key.Binding

	// Search input
	ConfirmSearch key.Binding
	ClearSearch   key.Binding

	// Custom scenario form
	NextField  key.Binding
	PrevField  key.Binding
	Submit     key.Binding
	CancelForm key.Binding

	// Agents
	Toggle      key.Binding
	Customize   key.Binding
	StartDebate key.Binding

	// Debate
	Play  key.Binding
	Leave key.Binding

	// Results
	NewDebate  key.Binding
	Home       key.Binding
	Transcript key.Binding
	Export     key.Binding
	ExportPDF  key.Binding
	Share      key.Binding
}

// Default returns the default key bindings.
func Default() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),

		PrevStep: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev step")),
		NextStep: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next step")),
		Begin:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "get started")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),

		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		NextCategory: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next category")),
		PrevCategory: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev category")),
		NewScenario:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "custom scenario")),

		ConfirmSearch: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		ClearSearch:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),

		NextField:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Submit:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		CancelForm: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Toggle:      key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle agent")),
		Customize:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "customize")),
		StartDebate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start debate")),

		Play:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Leave: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to agents")),

		NewDebate:  key.NewBinding(key.WithKeys("n", "b"), key.WithHelp("n", "new debate")),
		Home:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		Transcript: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "transcript")),
		Export:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export yaml")),
		ExportPDF:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "export pdf")),
		Share:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
	}
}

// Typing reports whether mode captures printable keys as text.
func (m Mode) Typing() bool {
	return m == ModeSearch || m == ModeCustomForm
}

// QuitBinding returns the binding that quits in mode. Text entry modes only
// honor ctrl+c so "q" can be typed.
func (k KeyMap) QuitBinding(mode Mode) key.Binding {
	if mode.Typing() {
		return k.ForceQuit
	}
	return k.Quit
}

// modeHelp adapts a fixed binding set to help.KeyMap.
type modeHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h modeHelp) ShortHelp() []key.Binding  { return h.short }
func (h modeHelp) FullHelp() [][]key.Binding { return h.full }

// For returns the help.KeyMap advertised in mode.
func (k KeyMap) For(mode Mode) help.KeyMap {
	quit := k.QuitBinding(mode)
	switch mode {
	case ModeHome:
		return modeHelp{
			short: []key.Binding{k.PrevStep, k.NextStep, k.Begin, quit},
			full:  [][]key.Binding{{k.PrevStep, k.NextStep}, {k.Begin, quit}},
		}
	case ModeScenarios:
		return modeHelp{
			short: []key.Binding{k.Up, k.Down, k.Select, k.Search, k.NextCategory, k.Help},
			full: [][]key.Binding{
				{k.Up, k.Down, k.Select},
				{k.Search, k.NextCategory, k.PrevCategory},
				{k.NewScenario, k.Back, quit},
			},
		}
	case ModeSearch:
		return modeHelp{
			short: []key.Binding{k.ConfirmSearch, k.ClearSearch, quit},
			full:  [][]key.Binding{{k.ConfirmSearch, k.ClearSearch, quit}},
		}
	case ModeCustomForm:
		return modeHelp{
			short: []key.Binding{k.NextField, k.PrevField, k.Submit, k.CancelForm},
			full:  [][]key.Binding{{k.NextField, k.PrevField}, {k.Submit, k.CancelForm, quit}},
		}
	case ModeAgents:
		return modeHelp{
			short: []key.Binding{k.Up, k.Down, k.Toggle, k.StartDebate, k.Back, k.Help},
			full: [][]key.Binding{
				{k.Up, k.Down, k.Toggle},
				{k.Customize, k.StartDebate},
				{k.Back, quit},
			},
		}
	case ModeDebate:
		return modeHelp{
			short: []key.Binding{k.Play, k.Up, k.Down, k.Leave, quit},
			full:  [][]key.Binding{{k.Play, k.Leave}, {k.Up, k.Down, quit}},
		}
	case ModeResults:
		return modeHelp{
			short: []key.Binding{k.Transcript, k.NewDebate, k.Home, k.Export, k.Help},
			full: [][]key.Binding{
				{k.Transcript, k.Up, k.Down},
				{k.Export, k.ExportPDF, k.Share},
				{k.NewDebate, k.Home, quit},
			},
		}
	}
	return modeHelp{short: []key.Binding{quit}, full: [][]key.Binding{{quit}}}
}
