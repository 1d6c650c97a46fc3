package revcheck

import (
	"context"
	"log/slog"

	"github.com/indaco/revcheck/internal/changelogparser"
	"github.com/indaco/revcheck/internal/core"
	"github.com/indaco/revcheck/internal/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Report collects the results of a run in target order.
type Report struct {
	LatestTag string
	Results   []*Result
}

// Mismatch returns the mismatch that stopped the run, or nil.
func (r *Report) Mismatch() *Mismatch {
	for _, res := range r.Results {
		if res.Mismatch != nil {
			return res.Mismatch
		}
	}
	return nil
}

// Passed reports whether every examined target matched the latest tag.
func (r *Report) Passed() bool {
	return r.Mismatch() == nil
}

// Runner checks a set of documentation pages against one changelog.
type Runner struct {
	fs        core.FileSystem
	changelog string
	targets   []Target
	opts      changelogparser.Options
	logger    *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithHeadingLevel sets the changelog heading level of release sections.
func WithHeadingLevel(level int) Option {
	return func(r *Runner) {
		r.opts.Level = level
	}
}

// WithUnreleased sets the heading text skipped when resolving the latest tag.
func WithUnreleased(text string) Option {
	return func(r *Runner) {
		r.opts.Unreleased = text
	}
}

// WithLogger sets the logger used for progress records.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a Runner reading the changelog and targets through fs.
func NewRunner(fs core.FileSystem, changelog string, targets []Target, opts ...Option) *Runner {
	r := &Runner{
		fs:        fs,
		changelog: changelog,
		targets:   targets,
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LatestTag reads the changelog and returns its latest released version.
func (r *Runner) LatestTag(ctx context.Context) (string, error) {
	data, err := r.fs.ReadFile(ctx, r.changelog)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read changelog", goerr.V("path", r.changelog))
	}

	tag, err := changelogparser.LatestTag(data, r.opts)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve latest tag", goerr.V("path", r.changelog))
	}

	r.logger.Debug("latest tag resolved", logging.Path(r.changelog), logging.Tag(tag))
	return tag, nil
}

// Run resolves the latest tag once and checks every target in order.
// The first mismatch stops the run; later targets are not read.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	tag, err := r.LatestTag(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{LatestTag: tag, Results: make([]*Result, 0, len(r.targets))}

	for _, target := range r.targets {
		doc, err := r.fs.ReadFile(ctx, target.Path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read documentation page", goerr.V("path", target.Path))
		}

		result, err := Check(tag, doc, target)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, result)

		r.logger.Debug("target checked",
			logging.File(result.Source),
			logging.Blocks(result.Blocks),
			logging.Checked(result.Checked),
			logging.ShortCircuited(result.ShortCircuited),
		)

		if m := result.Mismatch; m != nil {
			r.logger.Info("pinned revision mismatch",
				logging.File(m.Source),
				logging.Expected(m.ExpectedVersion),
				logging.Actual(m.ActualVersion),
			)
			return report, nil
		}
	}

	return report, nil
}
