// Package clix holds helpers shared by the revcheck subcommands.
package clix

import (
	"context"
	"errors"
	"log/slog"

	"github.com/indaco/revcheck/internal/config"
	"github.com/indaco/revcheck/internal/core"
	"github.com/indaco/revcheck/internal/revcheck"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitMismatch = 1
	ExitFatal    = 2
)

// NewFileSystemFn is a function variable so tests can swap the filesystem.
var NewFileSystemFn = func() core.FileSystem { return core.NewOSFileSystem() }

// NewRunner builds a Runner from the configuration.
func NewRunner(cfg *config.Config, logger *slog.Logger) *revcheck.Runner {
	return revcheck.NewRunner(NewFileSystemFn(), cfg.Changelog, cfg.CheckTargets(),
		revcheck.WithHeadingLevel(cfg.HeadingLevel),
		revcheck.WithUnreleased(cfg.Unreleased),
		revcheck.WithLogger(logger),
	)
}

// ValidateConfig rejects configurations the checker cannot run with.
// Referenced files are not checked here; reading them reports their errors.
func ValidateConfig(ctx context.Context, cfg *config.Config) error {
	results, err := config.NewValidator(nil, cfg).Validate(ctx)
	if err != nil {
		return err
	}
	return config.FirstError(results)
}

// ExitCode maps an error returned by the CLI to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, revcheck.ErrVersionMismatch):
		return ExitMismatch
	default:
		return ExitFatal
	}
}
