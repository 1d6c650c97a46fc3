// Package pins implements the pins command, an informational listing of every
// pinned rev in the configured documentation pages.
package pins
