package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/indaco/revcheck/internal/clix"
	"github.com/indaco/revcheck/internal/config"
	"github.com/indaco/revcheck/internal/core"
	"github.com/indaco/revcheck/internal/printer"
	"github.com/indaco/revcheck/internal/revcheck"
)

const changes = "## Unreleased\n\n## 2.1.0\n\n## 2.0.0\n"

func doc(rev string) string {
	return "```yaml\nrepos:\n  - repo: https://github.com/psf/black\n    rev: " + rev + "\n```\n"
}

func setup(t *testing.T, files map[string]string) (*bytes.Buffer, *bytes.Buffer, func(args ...string) error) {
	t.Helper()
	mfs := core.NewMockFileSystem()
	for path, content := range files {
		mfs.SetFile(path, []byte(content))
	}
	orig := clix.NewFileSystemFn
	clix.NewFileSystemFn = func() core.FileSystem { return mfs }
	t.Cleanup(func() {
		clix.NewFileSystemFn = orig
		printer.SetNoColor(false)
	})

	var stdout, stderr bytes.Buffer
	run := func(args ...string) error {
		app := New(config.Default())
		app.Writer = &stdout
		app.ErrWriter = &stderr
		return app.Run(context.Background(), append([]string{"revcheck", "--no-color"}, args...))
	}
	return &stdout, &stderr, run
}

func defaultFiles(first, second string) map[string]string {
	targets := config.DefaultTargets()
	return map[string]string{
		"CHANGES.md":    changes,
		targets[0].Path: first,
		targets[1].Path: second,
	}
}

func TestNew_Commands(t *testing.T) {
	app := New(config.Default())
	if app.Name != "revcheck" {
		t.Errorf("Name = %q, want revcheck", app.Name)
	}
	if app.Action == nil {
		t.Error("root command should default to check")
	}

	want := []string{"check", "latest", "pins", "doctor", "init"}
	if len(app.Commands) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(app.Commands))
	}
	for i, name := range want {
		if app.Commands[i].Name != name {
			t.Errorf("Commands[%d] = %q, want %q", i, app.Commands[i].Name, name)
		}
	}
}

func TestRoot_DefaultActionRunsCheck(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr error
		wantOut string
	}{
		{"pass", defaultFiles(doc("2.1.0"), doc("2.1.0")), nil, ""},
		{"mismatch", defaultFiles(doc("2.1.0"), doc("2.0.0")), revcheck.ErrVersionMismatch,
			"Please set the rev in ``using_black_with_jupyter_notebooks.md`` to be the latest one.\nExpected 2.1.0, got 2.0.0.\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, run := setup(t, tt.files)

			err := run()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if stdout.String() != tt.wantOut {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantOut)
			}
		})
	}
}

func TestRoot_ChangelogFlag(t *testing.T) {
	files := defaultFiles(doc("3.0.0"), doc("3.0.0"))
	files["OTHER.md"] = "## 3.0.0\n"
	stdout, _, run := setup(t, files)

	if err := run("--changelog", "OTHER.md", "latest"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout.String() != "3.0.0\n" {
		t.Errorf("stdout = %q, want 3.0.0", stdout.String())
	}
}

func TestRoot_DebugLogsGoToErrWriter(t *testing.T) {
	stdout, stderr, run := setup(t, defaultFiles(doc("2.1.0"), doc("2.1.0")))

	if err := run("--log-level", "debug", "check"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should stay empty on pass, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "tag=2.1.0") {
		t.Errorf("expected debug logs on stderr, got %q", stderr.String())
	}
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, _, run := setup(t, defaultFiles("", ""))

	err := run("--log-level", "verbose")
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
	if clix.ExitCode(err) != clix.ExitFatal {
		t.Errorf("exit code = %d, want %d", clix.ExitCode(err), clix.ExitFatal)
	}
}
