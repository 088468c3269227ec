// Package config provides configuration management for mdbook-sidebar.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ikari-pl/go-mdbook-sidebar/internal/sidebar"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".mdbook-sidebar.yaml"

// EnvPrefix prefixes environment overrides, e.g. MDBOOK_SIDEBAR_THEME.
const EnvPrefix = "MDBOOK_SIDEBAR_"

// Config holds the application configuration.
type Config struct {
	// Book options
	BookDir   string           `yaml:"book_dir" koanf:"book_dir"`
	Page      string           `yaml:"page" koanf:"page"`
	Providers sidebar.Registry `yaml:"providers,omitempty" koanf:"providers"`

	// Browser options
	Theme        string `yaml:"theme" koanf:"theme"`
	Mouse        bool   `yaml:"mouse" koanf:"mouse"`
	SidebarWidth int    `yaml:"sidebar_width" koanf:"sidebar_width"`
	MinWidth     int    `yaml:"min_width" koanf:"min_width"`
	RightMargin  int    `yaml:"right_margin" koanf:"right_margin"`

	// Output options
	OutputFormat string `yaml:"output_format" koanf:"output_format"` // "json", "markdown", "tree", "html"
	OutputFile   string `yaml:"output_file,omitempty" koanf:"output_file"`

	// Debug options
	LogFile string `yaml:"log_file,omitempty" koanf:"log_file"`
	Debug   bool   `yaml:"debug" koanf:"debug"`

	Lint LintConfig `yaml:"lint" koanf:"lint"`
}

// LintConfig configures the check command.
type LintConfig struct {
	Format        string   `yaml:"format" koanf:"format"` // "text", "json", "github"
	MinSeverity   string   `yaml:"min_severity" koanf:"min_severity"`
	EnabledRules  []string `yaml:"enabled_rules,omitempty" koanf:"enabled_rules"`
	DisabledRules []string `yaml:"disabled_rules,omitempty" koanf:"disabled_rules"`
	FailOnWarning bool     `yaml:"fail_on_warning" koanf:"fail_on_warning"`
	MaxIssues     int      `yaml:"max_issues" koanf:"max_issues"`
}

// NewConfig creates a new configuration with default values. Providers is
// left empty so a configured registry replaces the default instead of
// merging into it; Load fills it in.
func NewConfig() *Config {
	return &Config{
		BookDir:      "book",
		Page:         "index.html",
		Theme:        "default",
		Mouse:        true,
		SidebarWidth: 36,
		MinWidth:     sidebar.DefaultMinWidth,
		RightMargin:  20,
		OutputFormat: "json",
		Lint: LintConfig{
			Format:      "text",
			MinSeverity: "info",
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (MDBOOK_SIDEBAR_*). A missing file is not
// an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := NewConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to access config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(cfg.Providers) == 0 {
		cfg.Providers = sidebar.DefaultRegistry()
	}
	cfg.Lint.EnabledRules = splitList(cfg.Lint.EnabledRules)
	cfg.Lint.DisabledRules = splitList(cfg.Lint.DisabledRules)
	return cfg, nil
}

// envKey maps MDBOOK_SIDEBAR_LINT_MIN_SEVERITY to lint.min_severity and
// MDBOOK_SIDEBAR_BOOK_DIR to book_dir.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "lint_"); ok {
		return "lint." + rest
	}
	return key
}

// splitList expands comma-separated entries, as set from the environment.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to %s: %w", path, err)
	}
	return nil
}

var (
	validOutputFormats = map[string]bool{"json": true, "markdown": true, "md": true, "tree": true, "html": true}
	validLintFormats   = map[string]bool{"text": true, "json": true, "github": true}
	validSeverities    = map[string]bool{"error": true, "warning": true, "info": true}
	validThemes        = map[string]bool{"default": true, "neon": true}
)

// Validate validates the configuration.
func (c *Config) Validate() error {
	absBook, err := filepath.Abs(c.BookDir)
	if err != nil {
		return fmt.Errorf("invalid book directory %s: %w", c.BookDir, err)
	}
	c.BookDir = absBook

	info, err := os.Stat(c.BookDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("book directory does not exist: %s", c.BookDir)
	}
	if err != nil {
		return fmt.Errorf("failed to access book directory %s: %w", c.BookDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("book path is not a directory: %s", c.BookDir)
	}

	if !validOutputFormats[c.OutputFormat] {
		return fmt.Errorf("invalid output format: %s (valid: json, markdown, tree, html)", c.OutputFormat)
	}
	if !validThemes[c.Theme] {
		return fmt.Errorf("invalid theme: %s (valid: default, neon)", c.Theme)
	}

	if c.MinWidth < 1 {
		return fmt.Errorf("min_width must be positive, got %d", c.MinWidth)
	}
	if c.RightMargin < 0 {
		return fmt.Errorf("right_margin must be non-negative, got %d", c.RightMargin)
	}
	if c.SidebarWidth < c.MinWidth {
		return fmt.Errorf("sidebar_width %d is below min_width %d", c.SidebarWidth, c.MinWidth)
	}

	if err := validateRegistry(c.Providers); err != nil {
		return err
	}
	return c.Lint.Validate()
}

// Validate validates the lint options.
func (l LintConfig) Validate() error {
	if !validLintFormats[l.Format] {
		return fmt.Errorf("invalid lint format: %s (valid: text, json, github)", l.Format)
	}
	if !validSeverities[l.MinSeverity] {
		return fmt.Errorf("invalid min severity: %s (valid: error, warning, info)", l.MinSeverity)
	}
	if l.MaxIssues < 0 {
		return fmt.Errorf("max_issues must be non-negative")
	}
	return nil
}

func validateRegistry(registry sidebar.Registry) error {
	if len(registry) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}
	for i, p := range registry {
		if p.ID == "" {
			return fmt.Errorf("provider %d: id is required", i)
		}
		if _, dup := registry[:i].Lookup(p.ID); dup {
			return fmt.Errorf("provider %s: duplicate id", p.ID)
		}
		if p.PathPrefix == "" {
			return fmt.Errorf("provider %s: path_prefix is required", p.ID)
		}
		if p.DisplayName == "" {
			return fmt.Errorf("provider %s: display_name is required", p.ID)
		}
	}
	return nil
}

// ResizeBounds returns the configured drag bounds.
func (c *Config) ResizeBounds() sidebar.ResizeBounds {
	return sidebar.ResizeBounds{Min: c.MinWidth, Margin: c.RightMargin}
}
