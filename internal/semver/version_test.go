package semver

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr bool
	}{
		{in: "1.2.3", want: Version{Major: 1, Minor: 2, Patch: 3}},
		{in: "v1.2.3", want: Version{Major: 1, Minor: 2, Patch: 3}},
		{in: "24.1.0", want: Version{Major: 24, Minor: 1}},
		{in: " 2.0.0 ", want: Version{Major: 2}},
		{in: "1.0.0-rc.1", want: Version{Major: 1, PreRelease: "rc.1"}},
		{in: "1.0.0+build.5", want: Version{Major: 1, Build: "build.5"}},
		{in: "1.0.0-beta+exp.sha.5114f85", want: Version{Major: 1, PreRelease: "beta", Build: "exp.sha.5114f85"}},
		{in: "1.2", wantErr: true},
		{in: "stable", wantErr: true},
		{in: "Unreleased", wantErr: true},
		{in: "a.b.c", wantErr: true},
		{in: "1." + strings.Repeat("9", 200) + ".0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVersion) {
					t.Fatalf("expected ErrInvalidVersion, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVersion_String(t *testing.T) {
	v := Version{Major: 1, Minor: 2, Patch: 3, PreRelease: "alpha.1", Build: "7"}
	if got := v.String(); got != "1.2.3-alpha.1+7" {
		t.Errorf("String() = %q", got)
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "2.0.0", -1},
		{"2.1.0", "2.0.9", 1},
		{"1.0.0-alpha", "1.0.0", -1},
		{"1.0.0", "1.0.0-rc.1", 1},
		{"1.0.0-alpha", "1.0.0-alpha.1", -1},
		{"1.0.0-alpha.1", "1.0.0-alpha.beta", -1},
		{"1.0.0-beta.2", "1.0.0-beta.11", -1},
		{"1.0.0-rc.1", "1.0.0-beta", 1},
		{"1.0.0+a", "1.0.0+b", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			a, err := Parse(tt.a)
			if err != nil {
				t.Fatal(err)
			}
			b, err := Parse(tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRelate(t *testing.T) {
	tests := []struct {
		pinned, latest string
		want           Relation
	}{
		{"24.1.0", "24.1.0", RelationCurrent},
		{"23.12.1", "24.1.0", RelationBehind},
		{"25.1.0", "24.1.0", RelationAhead},
		{"v24.1.0", "24.1.0", RelationDiffers},
		{"stable", "24.1.0", RelationUnknown},
		{"stable", "stable", RelationCurrent},
		{"24.1.0", "Next", RelationUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.pinned+"_"+tt.latest, func(t *testing.T) {
			if got := Relate(tt.pinned, tt.latest); got != tt.want {
				t.Errorf("Relate(%q, %q) = %q, want %q", tt.pinned, tt.latest, got, tt.want)
			}
		})
	}
}
