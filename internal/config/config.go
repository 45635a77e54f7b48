package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alnah/go-sitepack/internal/fileutil"
	"github.com/alnah/go-sitepack/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength    = 4096 // Common PATH_MAX
	MaxTitleLength   = 200  // Document title
	MaxLangLength    = 35   // BCP 47 tags are rarely longer
	MaxRuleNameLen   = 50   // "menu-icons", "sticky-button"
	MaxPatternLength = 2000 // Fixup regex
	MaxReplaceLength = 10000
)

// Config holds all configuration for building a site.
type Config struct {
	Source     string           `yaml:"source"` // Site root (default ".")
	Minify     bool             `yaml:"minify"` // Minify inlined CSS and JS
	Assets     AssetsConfig     `yaml:"assets"`
	Site       SiteConfig       `yaml:"site"`
	Standalone StandaloneConfig `yaml:"standalone"`
	SPA        SPAConfig        `yaml:"spa"`
	Fixups     []FixupRule      `yaml:"fixups"`
}

// AssetsConfig defines where custom bundle assets are loaded from.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// SiteConfig defines directory mode options.
type SiteConfig struct {
	Output      string   `yaml:"output"`      // Output directory
	IgnoreDirs  []string `yaml:"ignoreDirs"`  // Directory names skipped at any depth
	IgnoreFiles []string `yaml:"ignoreFiles"` // File names skipped at any depth
	Ignore      []string `yaml:"ignore"`      // doublestar globs relative to the source
}

// StandaloneConfig defines single page mode options.
type StandaloneConfig struct {
	Input  string `yaml:"input"`  // Page relative to the source
	Output string `yaml:"output"` // Empty = <name>_standalone.html
}

// SPAConfig defines bundle mode options.
type SPAConfig struct {
	Output      string   `yaml:"output"`
	Pages       []string `yaml:"pages"`       // Page keys; empty = every HTML page under the source
	DefaultPage string   `yaml:"defaultPage"` // Shown on load and for unknown keys
	Stylesheet  string   `yaml:"stylesheet"`  // Global CSS, relative to the source
	Script      string   `yaml:"script"`      // Global JS, relative to the source
	Title       string   `yaml:"title"`       // Empty = title of the default page
	Lang        string   `yaml:"lang"`        // Empty = lang of the default page
	Dir         string   `yaml:"dir"`         // "ltr", "rtl", "auto"; empty = from the default page
}

// FixupRule is a find-and-replace edit applied to HTML files in place.
type FixupRule struct {
	Name        string   `yaml:"name"`
	Pattern     string   `yaml:"pattern"`     // Go regexp, matched case-insensitively across lines
	Replacement string   `yaml:"replacement"` // Literal text; empty removes matches
	Files       []string `yaml:"files"`       // Paths relative to the source
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Source: ".",
		Site: SiteConfig{
			Output:     "offline_site",
			IgnoreDirs: []string{".git", ".gemini", ".idea", ".vscode", "__pycache__", "node_modules"},
			Ignore:     []string{"**/*_standalone.html"},
		},
		Standalone: StandaloneConfig{
			Input: "index.html",
		},
		SPA: SPAConfig{
			Output:      "site_all_pages.html",
			DefaultPage: "index.html",
			Stylesheet:  "assets/css/style.css",
			Script:      "assets/js/main.js",
		},
	}
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	paths := []struct {
		name  string
		value string
	}{
		{"source", c.Source},
		{"assets.basePath", c.Assets.BasePath},
		{"site.output", c.Site.Output},
		{"standalone.input", c.Standalone.Input},
		{"standalone.output", c.Standalone.Output},
		{"spa.output", c.SPA.Output},
		{"spa.defaultPage", c.SPA.DefaultPage},
		{"spa.stylesheet", c.SPA.Stylesheet},
		{"spa.script", c.SPA.Script},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if err := c.validateSite(); err != nil {
		return err
	}
	if err := c.validateSPA(); err != nil {
		return err
	}
	return c.validateFixups()
}

func (c *Config) validateSite() error {
	for i, pattern := range c.Site.Ignore {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return fmt.Errorf("%w: site.ignore[%d]: bad glob %q", ErrInvalidValue, i, pattern)
		}
	}
	for i, name := range c.Site.IgnoreDirs {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%w: site.ignoreDirs[%d]: must be a bare directory name, got %q", ErrInvalidValue, i, name)
		}
	}
	return nil
}

func (c *Config) validateSPA() error {
	if err := validateFieldLength("spa.title", c.SPA.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("spa.lang", c.SPA.Lang, MaxLangLength); err != nil {
		return err
	}
	switch strings.ToLower(c.SPA.Dir) {
	case "", "ltr", "rtl", "auto":
		// valid
	default:
		return fmt.Errorf("%w: spa.dir: %q (must be ltr, rtl, or auto)", ErrInvalidValue, c.SPA.Dir)
	}

	defaultKey, err := PageKey(c.SPA.DefaultPage)
	if err != nil {
		return fmt.Errorf("%w: spa.defaultPage: %v", ErrInvalidValue, err)
	}
	if len(c.SPA.Pages) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(c.SPA.Pages))
	for i, page := range c.SPA.Pages {
		key, err := PageKey(page)
		if err != nil {
			return fmt.Errorf("%w: spa.pages[%d]: %v", ErrInvalidValue, i, err)
		}
		if seen[key] {
			return fmt.Errorf("%w: spa.pages[%d]: duplicate page %q", ErrInvalidValue, i, key)
		}
		seen[key] = true
	}
	if !seen[defaultKey] {
		return fmt.Errorf("%w: spa.defaultPage %q is not in spa.pages", ErrInvalidValue, c.SPA.DefaultPage)
	}
	return nil
}

func (c *Config) validateFixups() error {
	names := make(map[string]bool, len(c.Fixups))
	for i, rule := range c.Fixups {
		field := fmt.Sprintf("fixups[%d]", i)
		if rule.Name == "" {
			return fmt.Errorf("%w: %s.name: required", ErrInvalidValue, field)
		}
		if names[rule.Name] {
			return fmt.Errorf("%w: %s.name: duplicate rule %q", ErrInvalidValue, field, rule.Name)
		}
		names[rule.Name] = true
		if err := validateFieldLength(field+".name", rule.Name, MaxRuleNameLen); err != nil {
			return err
		}
		if err := validateFieldLength(field+".pattern", rule.Pattern, MaxPatternLength); err != nil {
			return err
		}
		if err := validateFieldLength(field+".replacement", rule.Replacement, MaxReplaceLength); err != nil {
			return err
		}
		if rule.Pattern == "" {
			return fmt.Errorf("%w: %s.pattern: required", ErrInvalidValue, field)
		}
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return fmt.Errorf("%w: %s.pattern: %v", ErrInvalidValue, field, err)
		}
		if len(rule.Files) == 0 {
			return fmt.Errorf("%w: %s.files: at least one file required", ErrInvalidValue, field)
		}
	}
	return nil
}

// PageKey normalizes a page path to its bundle key: forward slashes,
// cleaned, relative to the source. Paths escaping the source are rejected.
func PageKey(page string) (string, error) {
	if page == "" {
		return "", errors.New("empty page")
	}
	key := path.Clean(strings.ReplaceAll(page, `\`, "/"))
	if path.IsAbs(key) || key == ".." || strings.HasPrefix(key, "../") {
		return "", fmt.Errorf("page %q must be relative to the source", page)
	}
	return key, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the files LoadConfig tries, in order, for a config name:
// name.yaml and name.yml in the current directory, then in the user config
// directory under go-sitepack/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-sitepack", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
