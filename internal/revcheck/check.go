package revcheck

import (
	"errors"
	"fmt"

	"github.com/indaco/revcheck/internal/markdown"
	"github.com/indaco/revcheck/internal/parser"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// DefaultLanguage is the fenced block language holding example configs.
	DefaultLanguage = parser.FormatYAML

	// DefaultField is the path of the pinned revision in a pre-commit config.
	DefaultField = "repos.0.rev"
)

// ErrVersionMismatch is returned when a pinned revision differs from the
// latest tag.
var ErrVersionMismatch = errors.New("pinned revision does not match latest tag")

// Target describes one documentation page to check.
type Target struct {
	// Path is where the page is read from.
	Path string

	// Name labels the page in diagnostics.
	Name string

	// Language selects which fenced blocks are examined and how they decode.
	Language parser.Format

	// Field is the dot-notation path of the pinned revision.
	Field string
}

// Mismatch records a pinned revision that differs from the latest tag.
type Mismatch struct {
	Source          string
	ExpectedVersion string
	ActualVersion   string
	Line            int
}

// Message renders the diagnostic shown to the user.
func (m Mismatch) Message() string {
	return fmt.Sprintf("Please set the rev in ``%s`` to be the latest one.\nExpected %s, got %s.\n",
		m.Source, m.ExpectedVersion, m.ActualVersion)
}

// Result is the outcome of checking one document.
type Result struct {
	Source string

	// Blocks is the number of fenced blocks in the target language.
	Blocks int

	// Checked is the number of blocks whose pinned revision was compared.
	Checked int

	// ShortCircuited is set when a non-mapping block ended the check early.
	ShortCircuited bool

	// Mismatch is set when a pinned revision differed from the latest tag.
	Mismatch *Mismatch
}

// Passed reports whether the document is consistent with the latest tag.
func (r *Result) Passed() bool {
	return r.Mismatch == nil
}

func (t Target) withDefaults() Target {
	if t.Name == "" {
		t.Name = t.Path
	}
	if t.Language == "" {
		t.Language = DefaultLanguage
	}
	if t.Field == "" {
		t.Field = DefaultField
	}
	return t
}

// Check compares every pinned revision in doc against latestTag.
//
// Decode failures and pinned revisions missing from a mapping are returned
// as errors; a mismatch is reported through the Result.
func Check(latestTag string, doc []byte, target Target) (*Result, error) {
	target = target.withDefaults()

	blocks := markdown.FencedBlocks(doc, string(target.Language))
	result := &Result{Source: target.Name, Blocks: len(blocks)}

	for i, block := range blocks {
		value, err := parser.Decode(target.Language, []byte(block.Content))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to decode snippet",
				goerr.V("file", target.Name),
				goerr.V("block", i),
				goerr.V("line", block.Line),
			)
		}

		if !parser.IsMapping(value) {
			result.ShortCircuited = true
			return result, nil
		}

		pinned, err := parser.Lookup(value, target.Field)
		if err != nil {
			return nil, goerr.Wrap(err, "pinned revision not found in snippet",
				goerr.V("file", target.Name),
				goerr.V("block", i),
				goerr.V("line", block.Line),
			)
		}
		result.Checked++

		if rev, ok := pinned.(string); ok && rev == latestTag {
			continue
		}

		result.Mismatch = &Mismatch{
			Source:          target.Name,
			ExpectedVersion: latestTag,
			ActualVersion:   parser.ValueString(pinned),
			Line:            block.Line,
		}
		return result, nil
	}

	return result, nil
}
