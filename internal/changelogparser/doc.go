// Package changelogparser reads release headings out of a Markdown changelog
// and resolves the latest released version from them.
package changelogparser
