package initialize

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/indaco/revcheck/internal/config"
)

// Template is a preset list of documentation pages for common layouts.
type Template struct {
	Name        string
	Description string
	Changelog   string
	Targets     []config.TargetConfig
}

// DefaultTemplate is used when --template is not given.
const DefaultTemplate = "black"

// AllTemplates returns all available templates.
func AllTemplates() []Template {
	return []Template{
		{
			Name:        "black",
			Description: "Version control and Jupyter integration guides",
			Changelog:   config.DefaultChangelog,
			Targets:     config.DefaultTargets(),
		},
		{
			Name:        "readme",
			Description: "A single pre-commit example in README.md",
			Changelog:   "CHANGELOG.md",
			Targets:     []config.TargetConfig{{Path: "README.md"}},
		},
		{
			Name:        "docs",
			Description: "Installation and usage pages under docs/",
			Changelog:   "CHANGELOG.md",
			Targets: []config.TargetConfig{
				{Path: filepath.Join("docs", "installation.md")},
				{Path: filepath.Join("docs", "usage.md")},
			},
		},
	}
}

// TemplateNames returns the names of all available templates.
func TemplateNames() []string {
	templates := AllTemplates()
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	return names
}

// GetTemplate returns the template with the given name, or an error if not found.
func GetTemplate(name string) (*Template, error) {
	for _, t := range AllTemplates() {
		if t.Name == name {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unknown template %q (available: %s)", name, strings.Join(TemplateNames(), ", "))
}

// IsValidTemplate checks if the given name is a valid template.
func IsValidTemplate(name string) bool {
	return slices.Contains(TemplateNames(), name)
}

// Config builds a configuration from the template.
func (t *Template) Config() *config.Config {
	cfg := &config.Config{
		Changelog: t.Changelog,
		Targets:   slices.Clone(t.Targets),
	}
	cfg.ApplyDefaults()
	return cfg
}
