package doctor

import (
	"context"
	"fmt"
	"io"

	"github.com/indaco/revcheck/internal/clix"
	"github.com/indaco/revcheck/internal/config"
	"github.com/indaco/revcheck/internal/logging"
	"github.com/indaco/revcheck/internal/printer"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Run returns the "doctor" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "doctor",
		Aliases:   []string{"validate"},
		Usage:     "Validate the configuration and the files it references",
		UsageText: "revcheck doctor",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDoctorCmd(ctx, cmd.Root().Writer, cfg)
		},
	}
}

func runDoctorCmd(ctx context.Context, w io.Writer, cfg *config.Config) error {
	results, err := config.NewValidator(clix.NewFileSystemFn(), cfg).Validate(ctx)
	if err != nil {
		return err
	}

	for _, r := range results {
		printResult(w, r)
	}

	if n := config.ErrorCount(results); n > 0 {
		fmt.Fprintln(w)
		printer.PrintError(w, fmt.Sprintf("%d error(s), %d warning(s)", n, config.WarningCount(results)))
		return goerr.New("configuration is invalid", goerr.V("errors", n))
	}

	tag, err := clix.NewRunner(cfg, logging.FromContext(ctx)).LatestTag(ctx)
	if err != nil {
		printResult(w, config.ValidationResult{Category: "Changelog", Message: err.Error()})
		return err
	}
	printResult(w, config.ValidationResult{
		Category: "Changelog",
		Passed:   true,
		Message:  fmt.Sprintf("latest release is %s", tag),
	})

	fmt.Fprintln(w)
	printer.PrintSuccess(w, fmt.Sprintf("Configuration is valid, %d warning(s)", config.WarningCount(results)))
	return nil
}

func printResult(w io.Writer, r config.ValidationResult) {
	var marker string
	switch {
	case r.Warning:
		marker = printer.Warning("⚠")
	case r.Passed:
		marker = printer.Success("✓")
	default:
		marker = printer.Error("✗")
	}
	fmt.Fprintf(w, "%s %s %s\n", marker, printer.Bold(r.Category+":"), r.Message)
}
