package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	sitepack "github.com/alnah/go-sitepack"
	"github.com/alnah/go-sitepack/internal/config"
)

// defaultConfigName is looked up in the standard locations when neither
// --config nor SITEPACK_CONFIG is set. Its absence is not an error.
const defaultConfigName = "sitepack"

// session holds what a command needs once flags, environment and config
// file are merged.
type session struct {
	cfg    *config.Config
	logger zerolog.Logger
}

// newSession loads the configuration for a command. merge applies the
// command's own flags last so they win over everything else.
func newSession(common commonFlags, env *Environment, merge func(*config.Config)) (*session, error) {
	logger := newLogger(env.Stderr, common.quiet, common.verbose)
	warnUnknownEnvVars(logger)

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(common.config, envCfg)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	applyEnvConfig(envCfg, cfg)
	if merge != nil {
		merge(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &session{cfg: cfg, logger: logger}, nil
}

// loadConfig resolves the config file from --config, then SITEPACK_CONFIG,
// then an optional sitepack.yaml. Without any of them the defaults apply.
func loadConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}
	if name != "" {
		return config.LoadConfig(name)
	}

	cfg, err := config.LoadConfig(defaultConfigName)
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

// mergeInlineFlags applies --minify and --asset-path to cfg.
func mergeInlineFlags(f inlineFlags, cfg *config.Config) {
	if f.minify {
		cfg.Minify = true
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
}

// builder returns a Builder configured from the session.
func (s *session) builder() (*sitepack.Builder, error) {
	return sitepack.NewBuilder(
		sitepack.WithLogger(s.logger),
		sitepack.WithMinify(s.cfg.Minify),
		sitepack.WithAssetPath(s.cfg.Assets.BasePath),
	)
}

// ignoreRules returns the parts of the source tree builds skip.
func (s *session) ignoreRules() sitepack.IgnoreRules {
	return sitepack.IgnoreRules{
		Dirs:  s.cfg.Site.IgnoreDirs,
		Files: s.cfg.Site.IgnoreFiles,
		Globs: s.cfg.Site.Ignore,
	}
}

// outputs returns the configured outputs of every build mode, so that no
// mode reads another's output as a source page.
func (s *session) outputs() []string {
	out := []string{s.cfg.Site.Output, s.cfg.SPA.Output}
	if s.cfg.Standalone.Output != "" {
		out = append(out, s.cfg.Standalone.Output)
	}
	return out
}
