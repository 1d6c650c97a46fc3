package latest

import (
	"context"
	"fmt"

	"github.com/indaco/revcheck/internal/clix"
	"github.com/indaco/revcheck/internal/config"
	"github.com/indaco/revcheck/internal/logging"
	"github.com/urfave/cli/v3"
)

// Run returns the "latest" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "latest",
		Aliases:   []string{"tag"},
		Usage:     "Print the latest released version from the changelog",
		UsageText: "revcheck latest",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runLatestCmd(ctx, cmd, cfg)
		},
	}
}

func runLatestCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	if err := clix.ValidateConfig(ctx, cfg); err != nil {
		return err
	}

	tag, err := clix.NewRunner(cfg, logging.FromContext(ctx)).LatestTag(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.Root().Writer, tag)
	return nil
}
