// Package markdown wraps Goldmark to pull the two structures revcheck cares
// about out of a Markdown document: headings at a given level and fenced code
// blocks tagged with a given language.
package markdown
