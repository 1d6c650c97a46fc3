// Package tui holds the interactive pieces of revcheck: terminal detection,
// prompt themes, and the confirmation prompt used before overwriting files.
package tui
