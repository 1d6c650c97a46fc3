package initialize

import (
	"testing"
	"testing/fstest"
)

const pinnedDoc = "# Guide\n\n```yaml\nrepos:\n  - repo: https://github.com/psf/black\n    rev: 24.1.0\n```\n"

func TestDetectChangelog(t *testing.T) {
	tests := []struct {
		name  string
		files fstest.MapFS
		want  string
	}{
		{"changes first", fstest.MapFS{"CHANGES.md": {}, "CHANGELOG.md": {}}, "CHANGES.md"},
		{"changelog", fstest.MapFS{"CHANGELOG.md": {}}, "CHANGELOG.md"},
		{"history", fstest.MapFS{"HISTORY.md": {}}, "HISTORY.md"},
		{"none", fstest.MapFS{"README.md": {}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectChangelog(tt.files); got != tt.want {
				t.Errorf("DetectChangelog() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiscoverTargets(t *testing.T) {
	files := fstest.MapFS{
		"README.md":                  {Data: []byte("# Project\n\nNo snippets.\n")},
		"docs/integrations/vcs.md":   {Data: []byte(pinnedDoc)},
		"docs/guides/jupyter.md":     {Data: []byte("```yaml\n- scalar list\n```\n\n" + pinnedDoc)},
		"docs/other.md":              {Data: []byte("```yaml\nkey: value\n```\n")},
		"docs/config.txt":            {Data: []byte(pinnedDoc)},
		".github/workflows/notes.md": {Data: []byte(pinnedDoc)},
		"node_modules/pkg/README.md": {Data: []byte(pinnedDoc)},
		"docs/broken.md":             {Data: []byte("```yaml\nkey: [unclosed\n```\n")},
	}

	targets, err := DiscoverTargets(files)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"docs/guides/jupyter.md", "docs/integrations/vcs.md"}
	if len(targets) != len(want) {
		t.Fatalf("got %d targets %+v, want %v", len(targets), targets, want)
	}
	for i, path := range want {
		if targets[i].Path != path {
			t.Errorf("targets[%d].Path = %q, want %q", i, targets[i].Path, path)
		}
	}
}
