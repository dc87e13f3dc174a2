package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityDebug, "debug"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("title is required")

	if err.Severity() != SeverityWarning {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityWarning)
	}
	if !err.IsUserFacing() {
		t.Error("IsUserFacing() = false, want true")
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "bare",
			err:  NewValidationError("Please fill in all fields."),
			want: "validation error: Please fill in all fields.",
		},
		{
			name: "field and value",
			err:  NewValidationError("too few agents").WithField("agents").WithValue(1),
			want: "validation error [field=agents, value=1]: too few agents",
		},
		{
			name: "with cause",
			err:  NewValidationError("cannot start").WithCause(ErrNotEnoughAgents),
			want: "validation error: cannot start: not enough agents selected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Is(t *testing.T) {
	err := NewValidationError("bad").WithCause(ErrNotEnoughAgents)

	if !Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}
	if !Is(err, ErrNotEnoughAgents) {
		t.Error("ValidationError should match its cause")
	}
	if Is(err, ErrNotFound) {
		t.Error("ValidationError should not match ErrNotFound")
	}

	wrapped := fmt.Errorf("store: %w", err)
	var vErr *ValidationError
	if !As(wrapped, &vErr) {
		t.Fatal("As() should find ValidationError through wrapping")
	}
	if vErr.Message() != "bad" {
		t.Errorf("Message() = %q, want %q", vErr.Message(), "bad")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("scenario", "nope")

	if got, want := err.Error(), "scenario not found: nope"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
	if Is(err, ErrInvalidInput) {
		t.Error("NotFoundError should not match ErrInvalidInput")
	}
	if !IsUserFacing(err) {
		t.Error("NotFoundError should be user facing")
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("boom"), false},
		{"validation", NewValidationError("x"), true},
		{"wrapped validation", fmt.Errorf("ctx: %w", NewValidationError("x")), true},
		{"not found", NewNotFoundError("agent", "9"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetSeverity(t *testing.T) {
	if got := GetSeverity(nil); got != SeverityDebug {
		t.Errorf("GetSeverity(nil) = %v, want debug", got)
	}
	if got := GetSeverity(errors.New("x")); got != SeverityError {
		t.Errorf("GetSeverity(plain) = %v, want error", got)
	}
	if got := GetSeverity(NewValidationError("x")); got != SeverityWarning {
		t.Errorf("GetSeverity(validation) = %v, want warning", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", NewValidationError("Please fill in all fields.").WithField("title"), "Please fill in all fields."},
		{"wrapped validation", fmt.Errorf("start debate: %w", NewValidationError("Pick two")), "Pick two"},
		{"not found", NewNotFoundError("scenario", "zzz"), "scenario not found: zzz"},
		{"internal", errors.New("disk on fire"), "An internal error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
