package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-sitepack/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // SITEPACK_CONFIG: config file name or path
	Source     string // SITEPACK_SOURCE: site root
	AssetPath  string // SITEPACK_ASSET_PATH: custom bundle assets
	Minify     *bool  // SITEPACK_MINIFY: nil when unset or not a boolean
	SiteOutput string // SITEPACK_SITE_OUTPUT: directory mode output
	SPAOutput  string // SITEPACK_SPA_OUTPUT: bundle output file
}

// knownEnvVars lists valid SITEPACK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SITEPACK_CONFIG":      true,
	"SITEPACK_SOURCE":      true,
	"SITEPACK_ASSET_PATH":  true,
	"SITEPACK_MINIFY":      true,
	"SITEPACK_SITE_OUTPUT": true,
	"SITEPACK_SPA_OUTPUT":  true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("SITEPACK_CONFIG"),
		Source:     os.Getenv("SITEPACK_SOURCE"),
		AssetPath:  os.Getenv("SITEPACK_ASSET_PATH"),
		SiteOutput: os.Getenv("SITEPACK_SITE_OUTPUT"),
		SPAOutput:  os.Getenv("SITEPACK_SPA_OUTPUT"),
	}

	if v := os.Getenv("SITEPACK_MINIFY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Minify = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized SITEPACK_* variable.
// Helps catch typos like SITEPACK_OUTPUT instead of SITEPACK_SITE_OUTPUT.
func warnUnknownEnvVars(logger zerolog.Logger) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "SITEPACK_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				logger.Warn().Str("variable", name).Msg("Unknown environment variable (typo?)")
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are merged afterwards,
// giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Source != "" {
		cfg.Source = env.Source
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Minify != nil {
		cfg.Minify = *env.Minify
	}
	if env.SiteOutput != "" {
		cfg.Site.Output = env.SiteOutput
	}
	if env.SPAOutput != "" {
		cfg.SPA.Output = env.SPAOutput
	}
}
