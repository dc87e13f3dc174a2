package tui

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/ethicsim/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI application
func New(opts Options) *App {
	model := NewModel(opts)
	return &App{
		model:   model,
		program: tea.NewProgram(model, tea.WithAltScreen()),
	}
}

// Run starts the TUI application and blocks until the user quits.
func (a *App) Run() error {
	// Set up signal handling for graceful shutdown so a running debate is
	// canceled rather than left with a pending tick.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		if _, ok := <-sigChan; ok {
			a.program.Send(tea.Quit())
		}
	}()

	final, err := a.program.Run()

	// Clean up signal handler
	signal.Stop(sigChan)
	close(sigChan)

	if m, ok := final.(Model); ok {
		m.Close()
	} else {
		a.model.Close()
	}
	return err
}

// ApplyConfig hands a reloaded configuration to the program. It is safe to
// call from any goroutine, such as a config file watcher, and blocks until
// the program accepts the message.
func (a *App) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	a.program.Send(configChangedMsg{cfg: cfg})
}
