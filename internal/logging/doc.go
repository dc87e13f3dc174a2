// Package logging provides structured logging for the ethics simulator.
//
// This package wraps Go's log/slog to write JSON-formatted logs. The TUI owns
// the terminal, so logs go to a file under the configured log directory,
// rotated by size. Headless commands may log to stderr instead.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(dir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("debate completed", "winner", 2)
//
// # Context Propagation
//
// Child loggers carry persistent attributes:
//
//	runLogger := logger.WithScenario("ai-hiring").WithRun(runID)
//	runLogger.Debug("message revealed", "round", 1)
//
// Every entry from runLogger includes scenario_id and run_id.
//
// # Thread Safety
//
// [Logger] and [RotatingWriter] are safe for concurrent use. Child loggers
// share the parent's writer.
package logging
