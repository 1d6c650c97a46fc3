package pins

import (
	"context"
	"fmt"

	"github.com/indaco/revcheck/internal/clix"
	"github.com/indaco/revcheck/internal/config"
	"github.com/indaco/revcheck/internal/logging"
	"github.com/urfave/cli/v3"
)

// Run returns the "pins" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "pins",
		Usage: "List every pinned rev found in the documentation",
		UsageText: `revcheck pins [options]

Lists each fenced block of every target page with the rev it pins and how
that rev relates to the latest release. Unlike check, every block is listed
and outdated revs do not fail the command.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json",
				Value:   string(FormatText),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runPinsCmd(ctx, cmd, cfg)
		},
	}
}

func runPinsCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	format, err := ParseOutputFormat(cmd.String("format"))
	if err != nil {
		return err
	}
	if err := clix.ValidateConfig(ctx, cfg); err != nil {
		return err
	}

	tag, pins, err := clix.NewRunner(cfg, logging.FromContext(ctx)).Pins(ctx)
	if err != nil {
		return err
	}

	out, err := NewFormatter(format).Format(tag, pins)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.Root().Writer, out)
	return nil
}
