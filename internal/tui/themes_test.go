package tui

import (
	"slices"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRevcheckTheme(t *testing.T) {
	theme := revcheckTheme()
	if theme == nil {
		t.Fatal("revcheckTheme() returned nil")
	}

	if !theme.Focused.Title.GetBold() {
		t.Error("Focused.Title should be bold")
	}
	if theme.Focused.Base.GetBorderStyle() != lipgloss.RoundedBorder() {
		t.Error("Focused.Base should have rounded border")
	}
	if !theme.Focused.FocusedButton.GetBold() {
		t.Error("Focused.FocusedButton should be bold")
	}

	for name, style := range map[string]lipgloss.Style{
		"FocusedButton": theme.Focused.FocusedButton,
		"BlurredButton": theme.Focused.BlurredButton,
	} {
		_, right, _, left := style.GetPadding()
		if left != 1 || right != 1 {
			t.Errorf("%s horizontal padding = (%d, %d), want (1, 1)", name, left, right)
		}
	}

	if theme.Blurred.Base.GetBorderStyle() != lipgloss.HiddenBorder() {
		t.Error("Blurred.Base should hide its border")
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ValidThemes {
		t.Run(name, func(t *testing.T) {
			if GetTheme(name) == nil {
				t.Errorf("GetTheme(%q) returned nil", name)
			}
		})
	}

	for _, name := range []string{"", "neon", "Dracula"} {
		if GetTheme(name) != nil {
			t.Errorf("GetTheme(%q) should return nil", name)
		}
	}
}

func TestIsValidTheme(t *testing.T) {
	if !IsValidTheme("revcheck") {
		t.Error("revcheck should be valid")
	}
	if IsValidTheme("solarized") {
		t.Error("solarized should not be valid")
	}
	if !slices.Contains(ValidThemes, "catppuccin") {
		t.Error("catppuccin missing from ValidThemes")
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(resetTheme)

	SetTheme("dracula")
	if currentTheme == nil {
		t.Fatal("expected dracula theme to be set")
	}

	SetTheme("unknown")
	if currentTheme != nil {
		t.Error("unknown theme should reset to default")
	}
	if currentThemeOrDefault() == nil {
		t.Error("default theme should never be nil")
	}
}
