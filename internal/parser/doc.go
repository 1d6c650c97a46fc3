// Package parser decodes structured configuration snippets (YAML, JSON, TOML)
// into generic values and resolves dot-notation field paths inside them.
package parser
