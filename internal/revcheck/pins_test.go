package revcheck

import (
	"context"
	"testing"

	"github.com/indaco/revcheck/internal/semver"
)

func TestRunner_Pins(t *testing.T) {
	first := preCommitDoc("2.1.0") + "```yaml\nplain\n```\n\n" + preCommitDoc("2.0.0")
	second := "```yaml\nrepos:\n  - repo: local\n```\n\n```yaml\nrepos: [broken\n```\n\n" + preCommitDoc("3.0.0")
	mfs := newFS(changes, first, second)

	tag, pins, err := NewRunner(mfs, "CHANGES.md", defaultTargets).Pins(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag != "2.1.0" {
		t.Errorf("tag = %q, want 2.1.0", tag)
	}

	want := []struct {
		source   string
		mapping  bool
		found    bool
		revision string
		relation semver.Relation
	}{
		{"source_version_control.md", true, true, "2.1.0", semver.RelationCurrent},
		{"source_version_control.md", false, false, "", semver.RelationUnknown},
		{"source_version_control.md", true, true, "2.0.0", semver.RelationBehind},
		{"using_black_with_jupyter_notebooks.md", true, false, "", semver.RelationUnknown},
		{"using_black_with_jupyter_notebooks.md", false, false, "", semver.RelationUnknown},
		{"using_black_with_jupyter_notebooks.md", true, true, "3.0.0", semver.RelationAhead},
	}

	if len(pins) != len(want) {
		t.Fatalf("expected %d pins, got %d: %+v", len(want), len(pins), pins)
	}
	for i, w := range want {
		p := pins[i]
		if p.Source != w.source || p.Mapping != w.mapping || p.Found != w.found ||
			p.Revision != w.revision || p.Relation != w.relation {
			t.Errorf("pin %d = %+v, want %+v", i, p, w)
		}
		if p.Line == 0 && w.mapping {
			t.Errorf("pin %d has no line number", i)
		}
	}
}
