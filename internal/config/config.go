package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/revcheck/internal/changelogparser"
	"github.com/indaco/revcheck/internal/core"
	"github.com/indaco/revcheck/internal/parser"
	"github.com/indaco/revcheck/internal/revcheck"
)

// ConfigFile is the name of the configuration file looked up in the working directory.
const ConfigFile = ".revcheck.yaml"

// ConfigFilePerm is the permission used when writing the configuration file.
const ConfigFilePerm = core.PermPublicR

// Default paths checked when no configuration file exists.
const (
	DefaultChangelog = "CHANGES.md"
	DefaultTheme     = "revcheck"
)

// TargetConfig describes one documentation page to check.
type TargetConfig struct {
	Path     string `yaml:"path"`
	Name     string `yaml:"name,omitempty"`
	Language string `yaml:"language,omitempty"`
	Field    string `yaml:"field,omitempty"`
}

// Config is the main configuration structure for revcheck.
type Config struct {
	Changelog    string         `yaml:"changelog"`
	HeadingLevel int            `yaml:"heading-level,omitempty"`
	Unreleased   string         `yaml:"unreleased,omitempty"`
	Targets      []TargetConfig `yaml:"targets,omitempty"`
	Theme        string         `yaml:"theme,omitempty"`
}

// DefaultTargets returns the documentation pages checked out of the box.
func DefaultTargets() []TargetConfig {
	return []TargetConfig{
		{Path: filepath.Join("docs", "integrations", "source_version_control.md")},
		{Path: filepath.Join("docs", "guides", "using_black_with_jupyter_notebooks.md")},
	}
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills every unset field with its default value.
func (c *Config) ApplyDefaults() {
	if c.Changelog == "" {
		c.Changelog = DefaultChangelog
	}
	if c.HeadingLevel == 0 {
		c.HeadingLevel = changelogparser.DefaultLevel
	}
	if c.Unreleased == "" {
		c.Unreleased = changelogparser.DefaultUnreleased
	}
	if len(c.Targets) == 0 {
		c.Targets = DefaultTargets()
	}
	for i := range c.Targets {
		t := &c.Targets[i]
		if t.Name == "" && t.Path != "" {
			t.Name = filepath.Base(t.Path)
		}
		if t.Language == "" {
			t.Language = string(revcheck.DefaultLanguage)
		}
		if t.Field == "" {
			t.Field = revcheck.DefaultField
		}
	}
}

// GetTheme returns the configured theme or the default one.
func (c *Config) GetTheme() string {
	if c.Theme == "" {
		return DefaultTheme
	}
	return c.Theme
}

// CheckTargets converts the configured targets for the checker.
func (c *Config) CheckTargets() []revcheck.Target {
	targets := make([]revcheck.Target, len(c.Targets))
	for i, t := range c.Targets {
		targets[i] = revcheck.Target{
			Path:     t.Path,
			Name:     t.Name,
			Language: parser.Format(t.Language),
			Field:    t.Field,
		}
	}
	return targets
}

// LoadConfigFn is a function variable so tests can stub configuration loading.
var LoadConfigFn = loadConfig

func loadConfig() (*Config, error) {
	cfg, err := readConfigFile(ConfigFile)
	if err != nil {
		return nil, err
	}

	// ENV variable wins over the file.
	if envPath := os.Getenv("REVCHECK_CHANGELOG"); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		if !filepath.IsAbs(cleanPath) && strings.Contains(cleanPath, "..") {
			return nil, fmt.Errorf("invalid REVCHECK_CHANGELOG: path traversal not allowed, use absolute path instead")
		}
		cfg.Changelog = cleanPath
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

func readConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Marshaler abstracts configuration encoding for testability.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}

type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// ConfigSaver writes configuration files with injected dependencies.
type ConfigSaver struct {
	marshaler Marshaler
	fs        core.FileSystem
}

// NewConfigSaver creates a ConfigSaver. Nil dependencies fall back to the
// YAML marshaler and the OS filesystem.
func NewConfigSaver(marshaler Marshaler, fs core.FileSystem) *ConfigSaver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	if fs == nil {
		fs = core.NewOSFileSystem()
	}
	return &ConfigSaver{marshaler: marshaler, fs: fs}
}

// SaveTo writes cfg to the given path.
func (s *ConfigSaver) SaveTo(ctx context.Context, cfg *Config, path string) error {
	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", path, err)
	}

	if err := s.fs.WriteFile(ctx, path, data, ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", path, err)
	}
	return nil
}
