package initialize

import (
	"io/fs"
	"path"
	"strings"

	"github.com/indaco/revcheck/internal/config"
	"github.com/indaco/revcheck/internal/markdown"
	"github.com/indaco/revcheck/internal/parser"
	"github.com/indaco/revcheck/internal/revcheck"
)

// changelogCandidates are checked in order by DetectChangelog.
var changelogCandidates = []string{
	"CHANGES.md",
	"CHANGELOG.md",
	"HISTORY.md",
	"NEWS.md",
}

// skipDirs are never descended into by DiscoverTargets.
var skipDirs = map[string]bool{
	"node_modules":  true,
	"vendor":        true,
	"site-packages": true,
}

// DetectChangelog returns the first changelog candidate present in fsys,
// or an empty string.
func DetectChangelog(fsys fs.FS) string {
	for _, name := range changelogCandidates {
		if info, err := fs.Stat(fsys, name); err == nil && !info.IsDir() {
			return name
		}
	}
	return ""
}

// DiscoverTargets walks fsys for markdown pages holding at least one YAML
// block that pins a rev at the default field. Hidden directories are skipped.
func DiscoverTargets(fsys fs.FS) ([]config.TargetConfig, error) {
	var targets []config.TargetConfig

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && (strings.HasPrefix(d.Name(), ".") || skipDirs[d.Name()]) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(path.Ext(p), ".md") {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		if pinsRev(data) {
			targets = append(targets, config.TargetConfig{Path: p})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return targets, nil
}

func pinsRev(doc []byte) bool {
	for _, block := range markdown.FencedBlocks(doc, string(revcheck.DefaultLanguage)) {
		value, err := parser.Decode(revcheck.DefaultLanguage, []byte(block.Content))
		if err != nil || !parser.IsMapping(value) {
			continue
		}
		if _, err := parser.Lookup(value, revcheck.DefaultField); err == nil {
			return true
		}
	}
	return false
}
