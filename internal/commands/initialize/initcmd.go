package initialize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/indaco/revcheck/internal/clix"
	"github.com/indaco/revcheck/internal/config"
	"github.com/indaco/revcheck/internal/logging"
	"github.com/indaco/revcheck/internal/printer"
	"github.com/indaco/revcheck/internal/tui"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Function variables for testability.
var (
	newPrompterFn   = tui.NewPrompter
	isInteractiveFn = tui.IsInteractive
	rootFSFn        = func() fs.FS { return os.DirFS(".") }
)

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a " + config.ConfigFile + " configuration file",
		UsageText: `revcheck init [options]

Writes a configuration file in the current directory. With --discover the
changelog and every markdown page pinning a rev are detected; otherwise the
selected template is used.

Templates: ` + strings.Join(TemplateNames(), ", "),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "template",
				Aliases: []string{"t"},
				Usage:   "Target preset to write",
				Value:   DefaultTemplate,
			},
			&cli.BoolFlag{
				Name:  "discover",
				Usage: "Detect the changelog and documentation pages in the current directory",
			},
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"yes", "y"},
				Usage:   "Overwrite an existing configuration file without asking",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitCmd(ctx, cmd)
		},
	}
}

func runInitCmd(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer
	files := clix.NewFileSystemFn()

	tmpl, err := GetTemplate(cmd.String("template"))
	if err != nil {
		return err
	}

	proceed, err := confirmOverwrite(ctx, files.Stat, cmd.Bool("force"))
	if err != nil {
		return err
	}
	if !proceed {
		printer.PrintWarning(w, "Aborted, existing configuration kept.")
		return nil
	}

	cfg := tmpl.Config()
	if cmd.Bool("discover") {
		if err := applyDiscovery(ctx, cfg); err != nil {
			return err
		}
	}

	saver := config.NewConfigSaver(&commentedMarshaler{}, files)
	if err := saver.SaveTo(ctx, cfg, config.ConfigFile); err != nil {
		return err
	}

	printer.PrintSuccess(w, fmt.Sprintf("Created %s", config.ConfigFile))
	for _, t := range cfg.Targets {
		printer.PrintFaint(w, "  "+t.Path)
	}
	printer.PrintInfo(w, "Run 'revcheck doctor' to verify the configuration.")
	return nil
}

// confirmOverwrite decides whether an existing configuration may be replaced.
// Outside a terminal the user cannot be asked, so --force is required.
func confirmOverwrite(ctx context.Context, stat func(context.Context, string) (fs.FileInfo, error), force bool) (bool, error) {
	if _, err := stat(ctx, config.ConfigFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, goerr.Wrap(err, "failed to check configuration file", goerr.V("path", config.ConfigFile))
	}

	if force {
		return true, nil
	}
	if !isInteractiveFn() {
		return false, goerr.New("configuration file already exists, use --force to overwrite",
			goerr.V("path", config.ConfigFile))
	}

	return newPrompterFn().Confirm(
		"Overwrite "+config.ConfigFile+"?",
		"The existing configuration will be replaced.",
	)
}

// applyDiscovery replaces the template's changelog and targets with what is
// found in the working directory. Template values stay when nothing is found.
func applyDiscovery(ctx context.Context, cfg *config.Config) error {
	logger := logging.FromContext(ctx)
	root := rootFSFn()

	if changelog := DetectChangelog(root); changelog != "" {
		cfg.Changelog = changelog
	}

	targets, err := DiscoverTargets(root)
	if err != nil {
		return goerr.Wrap(err, "failed to scan documentation")
	}
	if len(targets) == 0 {
		logger.Warn("no documentation pages with pinned revs found, keeping template targets")
		return nil
	}

	for _, t := range targets {
		logger.Debug("discovered target", logging.Path(t.Path))
	}
	cfg.Targets = targets
	cfg.ApplyDefaults()
	return nil
}
