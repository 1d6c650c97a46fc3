package cli

import (
	"context"

	"github.com/indaco/revcheck/internal/commands/check"
	"github.com/indaco/revcheck/internal/commands/doctor"
	"github.com/indaco/revcheck/internal/commands/initialize"
	"github.com/indaco/revcheck/internal/commands/latest"
	"github.com/indaco/revcheck/internal/commands/pins"
	"github.com/indaco/revcheck/internal/config"
	"github.com/indaco/revcheck/internal/logging"
	"github.com/indaco/revcheck/internal/printer"
	"github.com/indaco/revcheck/internal/tui"
	urfavecli "github.com/urfave/cli/v3"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the revcheck cli.
// Without a subcommand the root command runs the check.
func New(cfg *config.Config) *urfavecli.Command {
	var (
		noColor bool
		logCfg  logging.Config
	)

	flags := []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:        "changelog",
			Aliases:     []string{"c"},
			Usage:       "Path to the changelog",
			Value:       cfg.Changelog,
			DefaultText: config.DefaultChangelog,
			Destination: &cfg.Changelog,
		},
		&urfavecli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored output",
			Destination: &noColor,
		},
	}
	flags = append(flags, logCfg.Flags()...)

	return &urfavecli.Command{
		Name:    "revcheck",
		Version: Version,
		Usage:   "Check that documented pre-commit revs match the latest release",
		Flags:   flags,
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColor)
			tui.SetTheme(cfg.GetTheme())

			logCfg.Writer = cmd.Root().ErrWriter
			logger, err := logCfg.Configure()
			if err != nil {
				return ctx, err
			}
			return logging.WithLogger(ctx, logger), nil
		},
		Action: check.Action(cfg),
		Commands: []*urfavecli.Command{
			check.Run(cfg),
			latest.Run(cfg),
			pins.Run(cfg),
			doctor.Run(cfg),
			initialize.Run(),
		},
	}
}
