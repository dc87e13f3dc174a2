package styles

import "testing"

func TestToneColor(t *testing.T) {
	SetActiveTheme(ThemeDefault)

	tests := []struct {
		tone     string
		expected string
	}{
		{"success", "#10B981"},
		{"warning", "#F59E0B"},
		{"error", "#F87171"},
		{"unknown", "#9CA3AF"}, // Should fall back to MutedColor
	}

	for _, tt := range tests {
		t.Run(tt.tone, func(t *testing.T) {
			got := ToneColor(tt.tone)
			if string(got) != tt.expected {
				t.Errorf("ToneColor(%q) = %q, want %q", tt.tone, got, tt.expected)
			}
		})
	}
}

func TestSetActiveTheme(t *testing.T) {
	t.Cleanup(func() { SetActiveTheme(ThemeDefault) })

	SetActiveTheme(ThemeMono)
	if ActiveTheme() != ThemeMono {
		t.Errorf("ActiveTheme() = %q, want mono", ActiveTheme())
	}
	if PrimaryColor != MonoPalette().Primary {
		t.Errorf("PrimaryColor = %q, want mono primary", PrimaryColor)
	}

	SetActiveTheme("neon")
	if ActiveTheme() != ThemeDefault {
		t.Errorf("unknown theme should select default, got %q", ActiveTheme())
	}
	if PrimaryColor != DefaultPalette().Primary {
		t.Errorf("PrimaryColor = %q, want default primary", PrimaryColor)
	}
}

func TestIsValidTheme(t *testing.T) {
	for _, name := range BuiltinThemes() {
		if !IsValidTheme(name) {
			t.Errorf("IsValidTheme(%q) = false", name)
		}
	}
	if IsValidTheme("dracula") {
		t.Error("IsValidTheme(dracula) = true, want false")
	}
}
