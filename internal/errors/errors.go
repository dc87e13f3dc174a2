// Package errors provides the error vocabulary shared by the ethics simulator.
//
// The simulator touches no network, disk-backed state or external process
// during a debate, so the vocabulary is deliberately small:
//
//   - ValidationError: a required field is missing or a precondition such as
//     the minimum number of debate participants does not hold
//   - NotFoundError: a scenario or agent reference does not resolve
//
// Both are user facing: their message is safe to show in a notification.
//
// # Usage
//
//	err := errors.NewValidationError("title is required").WithField("title")
//
//	if errors.Is(err, errors.ErrInvalidInput) { ... }
//
//	var vErr *errors.ValidationError
//	if errors.As(err, &vErr) { ... }
//
//	if errors.IsUserFacing(err) {
//	    notify(err)
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions so callers need a single import.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrNotFound indicates that a referenced resource does not exist.
	ErrNotFound = New("not found")
	// ErrCanceled indicates that an operation was canceled before completion.
	ErrCanceled = New("operation canceled")
	// ErrNotEnoughAgents indicates a debate was requested with too few participants.
	ErrNotEnoughAgents = New("not enough agents selected")
)

// -----------------------------------------------------------------------------
// Base Error
// -----------------------------------------------------------------------------

// AppError is implemented by every error type in this package.
type AppError interface {
	error
	Unwrap() error
	Is(target error) bool
	Severity() Severity
	// IsUserFacing returns true if the message is safe to display to end users.
	IsUserFacing() bool
}

type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Unwrap() error { return e.cause }

func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

func (e *baseError) Severity() Severity { return e.severity }
func (e *baseError) IsUserFacing() bool { return e.userFacing }

// Message returns the undecorated message, without cause or context.
func (e *baseError) Message() string { return e.message }

// -----------------------------------------------------------------------------
// ValidationError
// -----------------------------------------------------------------------------

// ValidationError represents invalid input or an unmet precondition.
//
// Example:
//
//	err := errors.NewValidationError("please select at least 2 agents").
//		WithField("agents").WithValue(1)
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is matches any *ValidationError and ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// NotFoundError
// -----------------------------------------------------------------------------

// NotFoundError reports that a resource reference did not resolve.
//
// Example:
//
//	err := errors.NewNotFoundError("scenario", "ai-hiring")
//	fmt.Println(err) // "scenario not found: ai-hiring"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s not found", resourceType),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.ResourceType, e.ResourceID)
}

// Is matches any *NotFoundError and ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return target == ErrNotFound
}

// -----------------------------------------------------------------------------
// Classification
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	var appErr AppError
	if As(err, &appErr) {
		return appErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement AppError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}
	var appErr AppError
	if As(err, &appErr) {
		return appErr.Severity()
	}
	return SeverityError
}

// UserMessage returns the bare message of a user-facing error, without the
// field/value decoration, suitable for a notification. Other errors map to a
// generic message.
func UserMessage(err error) string {
	var vErr *ValidationError
	if As(err, &vErr) {
		return vErr.message
	}
	var nfErr *NotFoundError
	if As(err, &nfErr) {
		return nfErr.Error()
	}
	if err == nil {
		return ""
	}
	return "An internal error occurred"
}
