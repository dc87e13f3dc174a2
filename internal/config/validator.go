package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "debate.tick_interval_ms")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Bounds shared with the debate and TUI packages.
const (
	MaxTickIntervalMs = 60000
	MinAgentsFloor    = 2
	MinAgentsCeiling  = 5
	MinWrapWidth      = 40
	MaxWrapWidth      = 200
	maxLogSizeMB      = 1000
)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the list of valid TUI themes
func ValidThemes() []string {
	return []string{"default", "mono"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateDebate()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateDebate validates the DebateConfig
func (c *Config) validateDebate() []ValidationError {
	var errors []ValidationError

	if c.Debate.TickIntervalMs <= 0 {
		errors = append(errors, ValidationError{
			Field:   "debate.tick_interval_ms",
			Value:   c.Debate.TickIntervalMs,
			Message: "must be positive",
		})
	}
	if c.Debate.TickIntervalMs > MaxTickIntervalMs {
		errors = append(errors, ValidationError{
			Field:   "debate.tick_interval_ms",
			Value:   c.Debate.TickIntervalMs,
			Message: fmt.Sprintf("exceeds maximum of %dms", MaxTickIntervalMs),
		})
	}

	if c.Debate.MinAgents < MinAgentsFloor || c.Debate.MinAgents > MinAgentsCeiling {
		errors = append(errors, ValidationError{
			Field:   "debate.min_agents",
			Value:   c.Debate.MinAgents,
			Message: fmt.Sprintf("must be between %d and %d", MinAgentsFloor, MinAgentsCeiling),
		})
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	// 0 means follow the terminal width
	if c.TUI.WrapWidth != 0 && (c.TUI.WrapWidth < MinWrapWidth || c.TUI.WrapWidth > MaxWrapWidth) {
		errors = append(errors, ValidationError{
			Field:   "tui.wrap_width",
			Value:   c.TUI.WrapWidth,
			Message: fmt.Sprintf("must be 0 or between %d and %d columns", MinWrapWidth, MaxWrapWidth),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}
