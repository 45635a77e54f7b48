package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Source != "." {
		t.Errorf("Source = %q, want %q", cfg.Source, ".")
	}
	if cfg.Minify {
		t.Error("Minify = true, want false")
	}
	if cfg.Standalone.Input != "index.html" {
		t.Errorf("Standalone.Input = %q, want index.html", cfg.Standalone.Input)
	}
	if cfg.SPA.DefaultPage != "index.html" {
		t.Errorf("SPA.DefaultPage = %q, want index.html", cfg.SPA.DefaultPage)
	}
	if cfg.SPA.Stylesheet != "assets/css/style.css" || cfg.SPA.Script != "assets/js/main.js" {
		t.Errorf("SPA globals = %q, %q", cfg.SPA.Stylesheet, cfg.SPA.Script)
	}
	if len(cfg.SPA.Pages) != 0 {
		t.Errorf("SPA.Pages = %v, want empty (discover)", cfg.SPA.Pages)
	}
	if cfg.Assets.BasePath != "" {
		t.Errorf("Assets.BasePath = %q, want empty", cfg.Assets.BasePath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "", 10, false},
		{"value at limit is valid", "1234567890", 10, false},
		{"value over limit", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength("test", tt.value, tt.maxLength)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFieldLength() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error should wrap ErrFieldTooLong, got %v", err)
			}
		})
	}
}

func TestPageKey(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"index.html", "index.html", false},
		{"./en/about.html", "en/about.html", false},
		{`en\contact.html`, "en/contact.html", false},
		{"en/../about.html", "about.html", false},
		{"", "", true},
		{"../outside.html", "", true},
		{"/etc/index.html", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := PageKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PageKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("PageKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	validRule := FixupRule{
		Name:    "menu",
		Pattern: `<i class="fa-bars"></i>`,
		Files:   []string{"index.html"},
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
		errText string
	}{
		{
			name:   "defaults are valid",
			modify: func(*Config) {},
		},
		{
			name: "explicit page list with default page",
			modify: func(c *Config) {
				c.SPA.Pages = []string{"index.html", "en/index.html", "en/about.html"}
			},
		},
		{
			name: "default page missing from list",
			modify: func(c *Config) {
				c.SPA.Pages = []string{"about.html"}
			},
			wantErr: ErrInvalidValue,
			errText: "spa.defaultPage",
		},
		{
			name: "duplicate pages after normalization",
			modify: func(c *Config) {
				c.SPA.Pages = []string{"index.html", "./index.html"}
			},
			wantErr: ErrInvalidValue,
			errText: "duplicate",
		},
		{
			name: "page escaping the source",
			modify: func(c *Config) {
				c.SPA.Pages = []string{"index.html", "../x.html"}
			},
			wantErr: ErrInvalidValue,
			errText: "spa.pages[1]",
		},
		{
			name: "empty default page",
			modify: func(c *Config) {
				c.SPA.DefaultPage = ""
			},
			wantErr: ErrInvalidValue,
		},
		{
			name: "bad dir attribute",
			modify: func(c *Config) {
				c.SPA.Dir = "sideways"
			},
			wantErr: ErrInvalidValue,
			errText: "spa.dir",
		},
		{
			name: "rtl dir is valid",
			modify: func(c *Config) {
				c.SPA.Dir = "RTL"
			},
		},
		{
			name: "title too long",
			modify: func(c *Config) {
				c.SPA.Title = strings.Repeat("t", MaxTitleLength+1)
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "bad ignore glob",
			modify: func(c *Config) {
				c.Site.Ignore = []string{"drafts/[*.html"}
			},
			wantErr: ErrInvalidValue,
			errText: "site.ignore[0]",
		},
		{
			name: "ignore dir with separator",
			modify: func(c *Config) {
				c.Site.IgnoreDirs = []string{"a/b"}
			},
			wantErr: ErrInvalidValue,
		},
		{
			name: "valid fixup",
			modify: func(c *Config) {
				c.Fixups = []FixupRule{validRule}
			},
		},
		{
			name: "fixup without name",
			modify: func(c *Config) {
				r := validRule
				r.Name = ""
				c.Fixups = []FixupRule{r}
			},
			wantErr: ErrInvalidValue,
			errText: "fixups[0].name",
		},
		{
			name: "duplicate fixup names",
			modify: func(c *Config) {
				c.Fixups = []FixupRule{validRule, validRule}
			},
			wantErr: ErrInvalidValue,
			errText: "duplicate rule",
		},
		{
			name: "fixup with bad regex",
			modify: func(c *Config) {
				r := validRule
				r.Pattern = "(unclosed"
				c.Fixups = []FixupRule{r}
			},
			wantErr: ErrInvalidValue,
			errText: "fixups[0].pattern",
		},
		{
			name: "fixup without files",
			modify: func(c *Config) {
				r := validRule
				r.Files = nil
				c.Fixups = []FixupRule{r}
			},
			wantErr: ErrInvalidValue,
			errText: "fixups[0].files",
		},
		{
			name: "output path too long",
			modify: func(c *Config) {
				c.Site.Output = strings.Repeat("d", MaxPathLength+1)
			},
			wantErr: ErrFieldTooLong,
			errText: "site.output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if tt.errText != "" && !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("error %q should mention %q", err, tt.errText)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("full file", func(t *testing.T) {
		path := writeConfig(t, `
source: site
minify: true
assets:
  basePath: ./custom-assets
site:
  output: dist
  ignoreDirs: [".git", "drafts"]
  ignoreFiles: ["old.html"]
  ignore: ["**/*.bak.html"]
standalone:
  input: en/index.html
  output: en_standalone.html
spa:
  output: all.html
  pages:
    - index.html
    - en/index.html
  defaultPage: index.html
  title: "Foundation - Single File"
  lang: ar
  dir: rtl
fixups:
  - name: stale-banner
    pattern: '<div class="banner">.*?</div>'
    files: [index.html, en/index.html]
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Source != "site" || !cfg.Minify {
			t.Errorf("Source/Minify = %q/%v", cfg.Source, cfg.Minify)
		}
		if cfg.Assets.BasePath != "./custom-assets" {
			t.Errorf("Assets.BasePath = %q", cfg.Assets.BasePath)
		}
		if cfg.Site.Output != "dist" || len(cfg.Site.IgnoreDirs) != 2 || cfg.Site.Ignore[0] != "**/*.bak.html" {
			t.Errorf("Site = %+v", cfg.Site)
		}
		if cfg.Standalone.Input != "en/index.html" || cfg.Standalone.Output != "en_standalone.html" {
			t.Errorf("Standalone = %+v", cfg.Standalone)
		}
		if len(cfg.SPA.Pages) != 2 || cfg.SPA.Title != "Foundation - Single File" || cfg.SPA.Dir != "rtl" {
			t.Errorf("SPA = %+v", cfg.SPA)
		}
		if len(cfg.Fixups) != 1 || cfg.Fixups[0].Name != "stale-banner" || len(cfg.Fixups[0].Files) != 2 {
			t.Errorf("Fixups = %+v", cfg.Fixups)
		}
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		path := writeConfig(t, "minify: true\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !cfg.Minify {
			t.Error("Minify = false, want true")
		}
		if cfg.Source != "." {
			t.Errorf("Source = %q, want default", cfg.Source)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		path := writeConfig(t, "minfy: true\n")

		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		path := writeConfig(t, "spa:\n  dir: up\n")

		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("LoadConfig() error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("missing file path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.yaml")

		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})
}

// Not parallel: changes the working directory.
func TestLoadConfig_ByName(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mysite.yml"), []byte("minify: true\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadConfig("mysite")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !cfg.Minify {
		t.Error("Minify = false, want true")
	}

	_, err = LoadConfig("nonexistent-config-xyz")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), "nonexistent-config-xyz.yaml") {
		t.Errorf("error should list tried paths: %v", err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sitepack.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("sitepack")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least the working directory candidates", paths)
	}
	if paths[0] != "sitepack.yaml" || paths[1] != "sitepack.yml" {
		t.Errorf("SearchPaths()[:2] = %v, want the working directory first", paths[:2])
	}
	for _, p := range paths[2:] {
		if filepath.Base(filepath.Dir(p)) != "go-sitepack" {
			t.Errorf("user path %q not under go-sitepack/", p)
		}
	}
}
