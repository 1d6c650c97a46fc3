package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/indaco/revcheck/internal/cli"
	"github.com/indaco/revcheck/internal/clix"
	"github.com/indaco/revcheck/internal/config"
)

func main() {
	err := runCLI(os.Args)
	reportError(os.Stderr, err)
	os.Exit(clix.ExitCode(err))
}

// runCLI loads the configuration and runs the root command with args.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return err
	}

	app := cli.New(cfg)
	return app.Run(context.Background(), args)
}

// reportError prints fatal errors with their stack trace. Mismatches have
// already been reported on stdout.
func reportError(w io.Writer, err error) {
	if clix.ExitCode(err) != clix.ExitFatal {
		return
	}
	fmt.Fprintf(w, "revcheck: %+v\n", err)
}
