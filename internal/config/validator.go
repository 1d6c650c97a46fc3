package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/indaco/revcheck/internal/core"
	"github.com/indaco/revcheck/internal/parser"
	"github.com/indaco/revcheck/internal/tui"
)

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	// Category is the validation category (e.g., "Changelog", "Target").
	Category string

	// Passed indicates if the check passed.
	Passed bool

	// Message provides details about the validation result.
	Message string

	// Warning indicates if this is a warning rather than an error.
	Warning bool
}

// Validator validates configuration settings and the files they point to.
type Validator struct {
	fs          core.FileSystem
	cfg         *Config
	checkFiles  bool
	validations []ValidationResult
}

// NewValidator creates a new configuration validator. When fs is nil only
// the configuration values are checked, not the files they reference.
func NewValidator(fs core.FileSystem, cfg *Config) *Validator {
	return &Validator{
		fs:          fs,
		cfg:         cfg,
		checkFiles:  fs != nil,
		validations: make([]ValidationResult, 0),
	}
}

// Validate runs all validation checks and returns the results.
func (v *Validator) Validate(ctx context.Context) ([]ValidationResult, error) {
	v.validations = make([]ValidationResult, 0)

	if v.cfg == nil {
		return nil, errors.New("no configuration to validate")
	}

	v.validateChangelog(ctx)
	v.validateTargets(ctx)
	v.validateTheme()

	return v.validations, nil
}

func (v *Validator) validateChangelog(ctx context.Context) {
	if v.cfg.Changelog == "" {
		v.addValidation("Changelog", false, "changelog path is empty", false)
		return
	}

	if v.cfg.HeadingLevel < 1 || v.cfg.HeadingLevel > 6 {
		v.addValidation("Changelog", false,
			fmt.Sprintf("heading-level must be between 1 and 6, got %d", v.cfg.HeadingLevel), false)
	} else {
		v.addValidation("Changelog", true, fmt.Sprintf("release headings at level %d", v.cfg.HeadingLevel), false)
	}

	v.validateFile(ctx, "Changelog", v.cfg.Changelog)
}

func (v *Validator) validateTargets(ctx context.Context) {
	if len(v.cfg.Targets) == 0 {
		v.addValidation("Targets", false, "no documentation targets configured", false)
		return
	}

	seen := make(map[string]bool)
	for i, t := range v.cfg.Targets {
		label := fmt.Sprintf("Target %d", i+1)
		if t.Path == "" {
			v.addValidation(label, false, "path is empty", false)
			continue
		}
		label = fmt.Sprintf("Target %s", t.Path)

		if seen[t.Path] {
			v.addValidation(label, false, "listed more than once", true)
		}
		seen[t.Path] = true

		if !parser.Format(t.Language).IsValid() {
			v.addValidation(label, false,
				fmt.Sprintf("unsupported language %q (supported: %s)", t.Language, strings.Join(parser.ValidFormats(), ", ")), false)
		}
		if t.Field == "" {
			v.addValidation(label, false, "field path is empty", false)
		} else if strings.HasPrefix(t.Field, ".") || strings.HasSuffix(t.Field, ".") || strings.Contains(t.Field, "..") {
			v.addValidation(label, false, fmt.Sprintf("malformed field path %q", t.Field), false)
		}

		v.validateFile(ctx, label, t.Path)
	}
}

func (v *Validator) validateTheme() {
	if v.cfg.Theme == "" || tui.IsValidTheme(v.cfg.Theme) {
		return
	}
	v.addValidation("Theme", false,
		fmt.Sprintf("unknown theme %q, falling back to %q", v.cfg.Theme, DefaultTheme), true)
}

func (v *Validator) validateFile(ctx context.Context, category, path string) {
	if !v.checkFiles {
		return
	}
	if _, err := v.fs.Stat(ctx, path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			v.addValidation(category, false, fmt.Sprintf("%s does not exist", path), false)
			return
		}
		v.addValidation(category, false, fmt.Sprintf("cannot access %s: %v", path, err), false)
		return
	}
	v.addValidation(category, true, fmt.Sprintf("%s found", path), false)
}

// addValidation adds a validation result to the list.
func (v *Validator) addValidation(category string, passed bool, message string, warning bool) {
	v.validations = append(v.validations, ValidationResult{
		Category: category,
		Passed:   passed,
		Message:  message,
		Warning:  warning,
	})
}

// HasErrors returns true if any validation failed.
func HasErrors(results []ValidationResult) bool {
	return ErrorCount(results) > 0
}

// ErrorCount returns the number of failed validations.
func ErrorCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if !r.Passed && !r.Warning {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warnings.
func WarningCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if r.Warning {
			count++
		}
	}
	return count
}

// FirstError returns the message of the first failed validation.
func FirstError(results []ValidationResult) error {
	for _, r := range results {
		if !r.Passed && !r.Warning {
			return fmt.Errorf("invalid configuration: %s: %s", r.Category, r.Message)
		}
	}
	return nil
}
