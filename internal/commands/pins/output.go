package pins

import (
	"fmt"
	"strings"

	"github.com/indaco/revcheck/internal/printer"
	"github.com/indaco/revcheck/internal/revcheck"
	"github.com/indaco/revcheck/internal/semver"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tidwall/sjson"
)

// OutputFormat selects how pins are rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", goerr.New("unsupported output format", goerr.V("format", s))
	}
}

// Formatter renders pin listings.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a Formatter for the given format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// Format renders the latest tag and the pins.
func (f *Formatter) Format(tag string, pins []revcheck.Pin) (string, error) {
	if f.format == FormatJSON {
		return formatJSON(tag, pins)
	}
	return formatText(tag, pins), nil
}

func formatText(tag string, pins []revcheck.Pin) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s\n", printer.Info("Latest release:"), printer.Bold(tag))
	if len(pins) == 0 {
		sb.WriteString(printer.Faint("No fenced blocks found."))
		sb.WriteString("\n")
		return sb.String()
	}
	sb.WriteString("\n")

	for _, p := range pins {
		location := fmt.Sprintf("%s:%d", p.Source, p.Line)
		fmt.Fprintf(&sb, "  %s %-45s %s\n", relationMarker(p), location, describe(p))
	}
	return sb.String()
}

func relationMarker(p revcheck.Pin) string {
	if !p.Found {
		return printer.Faint("-")
	}
	switch p.Relation {
	case semver.RelationCurrent:
		return printer.Success("✓")
	case semver.RelationBehind:
		return printer.Error("✗")
	case semver.RelationAhead, semver.RelationDiffers:
		return printer.Warning("⚠")
	default:
		return printer.Faint("?")
	}
}

func describe(p revcheck.Pin) string {
	switch {
	case !p.Mapping:
		return printer.Faint("(not a mapping)")
	case !p.Found:
		return printer.Faint("(no pinned rev)")
	default:
		return fmt.Sprintf("%s %s", p.Revision, printer.Faint("("+string(p.Relation)+")"))
	}
}

func formatJSON(tag string, pins []revcheck.Pin) (string, error) {
	out, err := sjson.Set("{}", "latest", tag)
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode latest tag")
	}
	out, err = sjson.SetRaw(out, "pins", "[]")
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode pins")
	}

	for i, p := range pins {
		entry, err := pinJSON(p)
		if err != nil {
			return "", goerr.Wrap(err, "failed to encode pin", goerr.V("index", i))
		}
		out, err = sjson.SetRaw(out, "pins.-1", entry)
		if err != nil {
			return "", goerr.Wrap(err, "failed to append pin", goerr.V("index", i))
		}
	}
	return out + "\n", nil
}

func pinJSON(p revcheck.Pin) (string, error) {
	fields := []struct {
		path  string
		value any
	}{
		{"source", p.Source},
		{"line", p.Line},
		{"mapping", p.Mapping},
		{"found", p.Found},
		{"relation", string(p.Relation)},
	}

	entry := "{}"
	var err error
	for _, f := range fields {
		if entry, err = sjson.Set(entry, f.path, f.value); err != nil {
			return "", err
		}
	}
	if p.Found {
		if entry, err = sjson.Set(entry, "rev", p.Revision); err != nil {
			return "", err
		}
	}
	return entry, nil
}
