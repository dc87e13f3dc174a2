package util

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncate(t *testing.T) {
	redStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	tests := []struct {
		name     string
		input    string
		maxWidth int
		check    func(t *testing.T, result string)
	}{
		{
			name:     "short plain string unchanged",
			input:    "hello",
			maxWidth: 10,
			check: func(t *testing.T, result string) {
				if result != "hello" {
					t.Errorf("expected 'hello', got %q", result)
				}
			},
		},
		{
			name:     "plain string truncated",
			input:    "Autonomous Vehicle Dilemma",
			maxWidth: 13,
			check: func(t *testing.T, result string) {
				if result != "Autonomous..." {
					t.Errorf("expected 'Autonomous...', got %q", result)
				}
			},
		},
		{
			name:     "tiny width returns ellipsis",
			input:    "hello",
			maxWidth: 2,
			check: func(t *testing.T, result string) {
				if result != Ellipsis {
					t.Errorf("expected %q, got %q", Ellipsis, result)
				}
			},
		},
		{
			name:     "styled string preserved when it fits",
			input:    redStyle.Render("hi"),
			maxWidth: 10,
			check: func(t *testing.T, result string) {
				if result != redStyle.Render("hi") {
					t.Errorf("styled string was modified when it shouldn't be")
				}
			},
		},
		{
			name:     "styled string truncated by visual width",
			input:    redStyle.Render("Facial Recognition Surveillance"),
			maxWidth: 12,
			check: func(t *testing.T, result string) {
				if width := lipgloss.Width(result); width > 12 {
					t.Errorf("result width %d exceeds maxWidth 12", width)
				}
			},
		},
		{
			name:     "wide characters counted by visual width",
			input:    "日本語テスト",
			maxWidth: 8,
			check: func(t *testing.T, result string) {
				if width := lipgloss.Width(result); width > 8 {
					t.Errorf("result width %d exceeds maxWidth 8", width)
				}
			},
		},
		{
			name:     "empty string unchanged",
			input:    "",
			maxWidth: 10,
			check: func(t *testing.T, result string) {
				if result != "" {
					t.Errorf("expected empty string, got %q", result)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Truncate(tt.input, tt.maxWidth))
		})
	}
}

func TestClampLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		width int
		want  string
	}{
		{"fits", "one\ntwo", 2, 10, "one\ntwo"},
		{"drops lines", "one\ntwo\nthree", 2, 10, "one\ntwo..."},
		{"long last line makes room", "one\nabcdefghij\nthree", 2, 10, "one\nabcdefg..."},
		{"long kept line truncated", "abcdefghijkl", 1, 8, "abcde..."},
		{"zero lines", "one", 0, 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampLines(tt.input, tt.n, tt.width)
			if got != tt.want {
				t.Errorf("ClampLines(%q, %d, %d) = %q, want %q", tt.input, tt.n, tt.width, got, tt.want)
			}
			for _, line := range strings.Split(got, "\n") {
				if lipgloss.Width(line) > tt.width {
					t.Errorf("line %q wider than %d", line, tt.width)
				}
			}
		})
	}
}
