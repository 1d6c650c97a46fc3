package changelogparser

import (
	"errors"

	"github.com/indaco/revcheck/internal/markdown"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// DefaultLevel is the heading level that introduces a release section.
	DefaultLevel = 2

	// DefaultUnreleased is the heading text of the pending-changes section.
	DefaultUnreleased = "Unreleased"
)

// ErrNoReleasedVersion is returned when a changelog has no release heading
// other than the unreleased section.
var ErrNoReleasedVersion = errors.New("no released version found in changelog")

// Options controls how release headings are recognized.
type Options struct {
	// Level is the heading level of release sections. Zero means DefaultLevel.
	Level int

	// Unreleased is the heading text skipped when resolving the latest tag.
	// Empty means DefaultUnreleased.
	Unreleased string
}

func (o Options) withDefaults() Options {
	if o.Level == 0 {
		o.Level = DefaultLevel
	}
	if o.Unreleased == "" {
		o.Unreleased = DefaultUnreleased
	}
	return o
}

// Headings returns the text of every release-level heading in document order.
func Headings(changelog []byte, opts Options) []string {
	opts = opts.withDefaults()

	hs := markdown.Headings(changelog, opts.Level)
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.Text
	}
	return out
}

// LatestTag returns the first release heading that is not the unreleased
// section. Headings are expected newest first and are never sorted.
func LatestTag(changelog []byte, opts Options) (string, error) {
	opts = opts.withDefaults()

	headings := Headings(changelog, opts)
	for _, h := range headings {
		if h != opts.Unreleased {
			return h, nil
		}
	}

	return "", goerr.Wrap(ErrNoReleasedVersion, "cannot resolve latest tag",
		goerr.V("level", opts.Level),
		goerr.V("headings", len(headings)),
	)
}
