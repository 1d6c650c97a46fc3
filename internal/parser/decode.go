package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrFieldNotFound is returned when a field path does not resolve.
	ErrFieldNotFound = errors.New("field not found")

	// ErrInvalidSnippet is returned when a snippet cannot be decoded.
	ErrInvalidSnippet = errors.New("invalid snippet")
)

// Decode decodes data in the given format into a generic value.
// An empty YAML document decodes to nil.
func Decode(format Format, data []byte) (any, error) {
	var v any
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &v)
	case FormatJSON:
		err = json.Unmarshal(data, &v)
	case FormatTOML:
		err = toml.Unmarshal(data, &v)
	default:
		return nil, goerr.New("unsupported format", goerr.V("format", format))
	}

	if err != nil {
		return nil, goerr.Wrap(errors.Join(ErrInvalidSnippet, err), fmt.Sprintf("failed to parse %s", format))
	}
	return v, nil
}

// IsMapping reports whether v is a key/value mapping.
func IsMapping(v any) bool {
	switch v.(type) {
	case map[string]any, map[any]any, yaml.MapSlice:
		return true
	default:
		return false
	}
}

// Lookup resolves a dot-notation field path inside v.
// Numeric segments index into sequences.
// Example: "repos.0.rev" accesses v["repos"][0]["rev"]
func Lookup(v any, field string) (any, error) {
	if field == "" {
		return nil, goerr.New("field path cannot be empty")
	}

	parts := strings.Split(field, ".")
	current := v

	for i, part := range parts {
		next, ok := step(current, part)
		if !ok {
			return nil, goerr.Wrap(ErrFieldNotFound, fmt.Sprintf("field %q not found", field),
				goerr.V("field", field),
				goerr.V("at", strings.Join(parts[:i+1], ".")),
			)
		}
		current = next
	}

	return current, nil
}

// step descends one path segment into current.
func step(current any, part string) (any, bool) {
	switch node := current.(type) {
	case map[string]any:
		value, exists := node[part]
		return value, exists
	case map[any]any:
		for k, value := range node {
			if fmt.Sprint(k) == part {
				return value, true
			}
		}
		return nil, false
	case yaml.MapSlice:
		for _, item := range node {
			if fmt.Sprint(item.Key) == part {
				return item.Value, true
			}
		}
		return nil, false
	case []any:
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 0 || idx >= len(node) {
			return nil, false
		}
		return node[idx], true
	default:
		return nil, false
	}
}

// ValueString renders a decoded scalar the way it would read in the snippet.
func ValueString(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
