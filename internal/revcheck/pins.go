package revcheck

import (
	"context"

	"github.com/indaco/revcheck/internal/logging"
	"github.com/indaco/revcheck/internal/markdown"
	"github.com/indaco/revcheck/internal/parser"
	"github.com/indaco/revcheck/internal/semver"
	"github.com/m-mizutani/goerr/v2"
)

// Pin is one fenced block inspected by Pins.
type Pin struct {
	Source string
	Line   int

	// Mapping is false when the block did not decode to a mapping.
	Mapping bool

	// Found is false when the field path is absent from a mapping.
	Found bool

	Revision string
	Relation semver.Relation
}

// Pins lists every block of every target with the revision it pins.
// Unlike Run it never stops early and treats decode errors and missing fields
// as data, so the listing covers the whole documentation set.
func (r *Runner) Pins(ctx context.Context) (string, []Pin, error) {
	tag, err := r.LatestTag(ctx)
	if err != nil {
		return "", nil, err
	}

	pins := make([]Pin, 0)
	for _, target := range r.targets {
		doc, err := r.fs.ReadFile(ctx, target.Path)
		if err != nil {
			return "", nil, goerr.Wrap(err, "failed to read documentation page", goerr.V("path", target.Path))
		}
		pins = append(pins, r.collectPins(tag, doc, target.withDefaults())...)
	}

	return tag, pins, nil
}

func (r *Runner) collectPins(tag string, doc []byte, target Target) []Pin {
	blocks := markdown.FencedBlocks(doc, string(target.Language))
	pins := make([]Pin, 0, len(blocks))

	for _, block := range blocks {
		pin := Pin{Source: target.Name, Line: block.Line, Relation: semver.RelationUnknown}

		value, err := parser.Decode(target.Language, []byte(block.Content))
		if err != nil {
			r.logger.Debug("snippet not decodable", logging.File(target.Name), logging.Error(err))
			pins = append(pins, pin)
			continue
		}
		if !parser.IsMapping(value) {
			pins = append(pins, pin)
			continue
		}
		pin.Mapping = true

		pinned, err := parser.Lookup(value, target.Field)
		if err != nil {
			pins = append(pins, pin)
			continue
		}
		pin.Found = true
		pin.Revision = parser.ValueString(pinned)

		if _, ok := pinned.(string); ok {
			pin.Relation = semver.Relate(pin.Revision, tag)
		}
		pins = append(pins, pin)
	}

	return pins
}
