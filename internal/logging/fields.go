package logging

import "log/slog"

// Canonical log field names.
const (
	KeyFile      = "file"
	KeyPath      = "path"
	KeyTag       = "tag"
	KeyBlocks    = "blocks"
	KeyChecked   = "checked"
	KeyExpected  = "expected"
	KeyActual    = "actual"
	KeyError     = "error"
	KeyShortCirc = "short_circuited"
)

func File(name string) slog.Attr      { return slog.String(KeyFile, name) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Tag(t string) slog.Attr          { return slog.String(KeyTag, t) }
func Blocks(n int) slog.Attr          { return slog.Int(KeyBlocks, n) }
func Checked(n int) slog.Attr         { return slog.Int(KeyChecked, n) }
func Expected(v string) slog.Attr     { return slog.String(KeyExpected, v) }
func Actual(v string) slog.Attr       { return slog.String(KeyActual, v) }
func ShortCircuited(b bool) slog.Attr { return slog.Bool(KeyShortCirc, b) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
