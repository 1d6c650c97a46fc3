package check

import (
	"context"
	"fmt"
	"io"

	"github.com/indaco/revcheck/internal/clix"
	"github.com/indaco/revcheck/internal/config"
	"github.com/indaco/revcheck/internal/logging"
	"github.com/indaco/revcheck/internal/printer"
	"github.com/indaco/revcheck/internal/revcheck"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Run returns the "check" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Verify that documented pre-commit revs match the latest release",
		UsageText: "revcheck check",
		Action:    Action(cfg),
	}
}

// Action returns the check action. The root command reuses it as its default.
func Action(cfg *config.Config) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		return runCheckCmd(ctx, cmd.Root().Writer, cfg)
	}
}

// runCheckCmd executes the check and prints the diagnostic on mismatch.
func runCheckCmd(ctx context.Context, w io.Writer, cfg *config.Config) error {
	if err := clix.ValidateConfig(ctx, cfg); err != nil {
		return err
	}

	logger := logging.FromContext(ctx)
	report, err := clix.NewRunner(cfg, logger).Run(ctx)
	if err != nil {
		return err
	}

	m := report.Mismatch()
	if m == nil {
		logger.Info("documentation revs are up to date", logging.Tag(report.LatestTag))
		return nil
	}

	fmt.Fprintln(w, printer.Error(m.Message()))
	return goerr.Wrap(revcheck.ErrVersionMismatch, "documentation rev is outdated",
		goerr.V("file", m.Source),
		goerr.V("expected", m.ExpectedVersion),
		goerr.V("actual", m.ActualVersion),
	)
}
