package parser

// Format represents the supported snippet formats.
type Format string

const (
	// FormatYAML is for YAML snippets (pre-commit configs, Chart.yaml, etc.).
	FormatYAML Format = "yaml"

	// FormatJSON is for JSON snippets.
	FormatJSON Format = "json"

	// FormatTOML is for TOML snippets (pyproject.toml, Cargo.toml, etc.).
	FormatTOML Format = "toml"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatTOML:
		return true
	default:
		return false
	}
}

// ValidFormats returns the list of supported format names.
func ValidFormats() []string {
	return []string{string(FormatYAML), string(FormatJSON), string(FormatTOML)}
}
