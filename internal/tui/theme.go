package tui

import (
	"github.com/charmbracelet/huh"
)

// currentTheme holds the theme used by prompts. Nil means the revcheck theme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name.
// Empty or unknown names select the revcheck theme.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return revcheckTheme()
	}
	return currentTheme
}

// resetTheme is used by tests.
func resetTheme() {
	currentTheme = nil
}
