// Package printer renders styled console output with lipgloss.
package printer
