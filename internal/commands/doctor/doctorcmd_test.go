package doctor

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/indaco/revcheck/internal/clix"
	"github.com/indaco/revcheck/internal/config"
	"github.com/indaco/revcheck/internal/core"
	"github.com/indaco/revcheck/internal/printer"
	"github.com/urfave/cli/v3"
)

func runDoctor(t *testing.T, cfg *config.Config, files map[string]string) (string, error) {
	t.Helper()
	mfs := core.NewMockFileSystem()
	for path, content := range files {
		mfs.SetFile(path, []byte(content))
	}
	orig := clix.NewFileSystemFn
	clix.NewFileSystemFn = func() core.FileSystem { return mfs }
	t.Cleanup(func() { clix.NewFileSystemFn = orig })

	printer.SetNoColor(true)
	t.Cleanup(func() { printer.SetNoColor(false) })

	var buf bytes.Buffer
	app := &cli.Command{Name: "revcheck", Writer: &buf, Commands: []*cli.Command{Run(cfg)}}
	err := app.Run(context.Background(), []string{"revcheck", "doctor"})
	return buf.String(), err
}

func TestDoctorCmd_Valid(t *testing.T) {
	cfg := config.Default()
	out, err := runDoctor(t, cfg, map[string]string{
		"CHANGES.md":        "## Unreleased\n\n## 24.2.0\n",
		cfg.Targets[0].Path: "",
		cfg.Targets[1].Path: "",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	for _, want := range []string{"latest release is 24.2.0", "Configuration is valid"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDoctorCmd_MissingFiles(t *testing.T) {
	out, err := runDoctor(t, config.Default(), map[string]string{})
	if err == nil {
		t.Fatal("expected error for missing files")
	}
	if !strings.Contains(out, "✗") {
		t.Errorf("expected failure markers:\n%s", out)
	}
	if !strings.Contains(out, "error(s)") {
		t.Errorf("expected summary line:\n%s", out)
	}
}

func TestDoctorCmd_NoReleasedVersion(t *testing.T) {
	cfg := config.Default()
	out, err := runDoctor(t, cfg, map[string]string{
		"CHANGES.md":        "## Unreleased\n",
		cfg.Targets[0].Path: "",
		cfg.Targets[1].Path: "",
	})
	if err == nil {
		t.Fatal("expected error when changelog has no release")
	}
	if !strings.Contains(out, "✗ Changelog:") {
		t.Errorf("expected changelog failure line:\n%s", out)
	}
}
