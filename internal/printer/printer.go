package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style definitions for consistent console output across the application.
var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

// SetNoColor disables ANSI styling for every subsequent render.
func SetNoColor(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Render functions return styled strings without printing.
// Each line is styled on its own so multi-line text is never padded into a block.

func render(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// Faint returns text with faint styling.
func Faint(text string) string { return render(faintStyle, text) }

// Bold returns text with bold styling.
func Bold(text string) string { return render(boldStyle, text) }

// Success returns text with success (green) styling.
func Success(text string) string { return render(successStyle, text) }

// Error returns text with error (red) styling.
func Error(text string) string { return render(errorStyle, text) }

// Warning returns text with warning (yellow) styling.
func Warning(text string) string { return render(warningStyle, text) }

// Info returns text with info (cyan) styling.
func Info(text string) string { return render(infoStyle, text) }

// Print functions write styled text followed by a newline to w.

// PrintSuccess prints text with success styling.
func PrintSuccess(w io.Writer, text string) {
	fmt.Fprintln(w, Success(text))
}

// PrintError prints text with error styling.
func PrintError(w io.Writer, text string) {
	fmt.Fprintln(w, Error(text))
}

// PrintWarning prints text with warning styling.
func PrintWarning(w io.Writer, text string) {
	fmt.Fprintln(w, Warning(text))
}

// PrintInfo prints text with info styling.
func PrintInfo(w io.Writer, text string) {
	fmt.Fprintln(w, Info(text))
}

// PrintFaint prints text with faint styling.
func PrintFaint(w io.Writer, text string) {
	fmt.Fprintln(w, Faint(text))
}
