package main

import (
	"context"
	"fmt"
	"path/filepath"

	sitepack "github.com/alnah/go-sitepack"
	"github.com/alnah/go-sitepack/internal/config"
)

// runSite builds the directory mode output.
func runSite(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseSiteFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: site takes at most one source directory", ErrUsage)
	}

	s, err := newSession(flags.common, env, func(cfg *config.Config) {
		mergeInlineFlags(flags.inline, cfg)
		if len(positional) == 1 {
			cfg.Source = positional[0]
		}
		if flags.output != "" {
			cfg.Site.Output = flags.output
		}
	})
	if err != nil {
		return err
	}
	b, err := s.builder()
	if err != nil {
		return err
	}

	opts := sitepack.SiteOptions{
		Source:  s.cfg.Source,
		Output:  s.cfg.Site.Output,
		Ignore:  s.ignoreRules(),
		Exclude: s.outputs(),
	}
	build := func(ctx context.Context) error {
		start := env.Now()
		report, err := b.BuildSite(ctx, opts)
		if err != nil {
			return err
		}
		printSiteReport(env, flags.common, report, env.Now().Sub(start))
		return nil
	}

	w, err := s.watcherFor(flags.watch, s.cfg.Source)
	if err != nil {
		return err
	}
	return runBuild(ctx, build, w)
}

// runStandalone builds one self-contained page.
func runStandalone(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseStandaloneFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: standalone takes at most one page", ErrUsage)
	}

	s, err := newSession(flags.common, env, func(cfg *config.Config) {
		mergeInlineFlags(flags.inline, cfg)
		if flags.output != "" {
			cfg.Standalone.Output = flags.output
		}
	})
	if err != nil {
		return err
	}
	b, err := s.builder()
	if err != nil {
		return err
	}

	// A page given on the command line is relative to the working directory;
	// the configured one is relative to the source.
	input := filepath.Join(s.cfg.Source, filepath.FromSlash(s.cfg.Standalone.Input))
	if len(positional) == 1 {
		input = positional[0]
	}
	opts := sitepack.StandaloneOptions{Input: input, Output: s.cfg.Standalone.Output}
	if opts.Output == "" {
		opts.Output = sitepack.StandaloneOutput(input)
	}

	build := func(ctx context.Context) error {
		report, err := b.BuildStandalone(ctx, opts)
		if err != nil {
			return err
		}
		printStandaloneReport(env, flags.common, report)
		return nil
	}

	w, err := s.watcherFor(flags.watch, filepath.Dir(input), opts.Output)
	if err != nil {
		return err
	}
	return runBuild(ctx, build, w)
}

// runSPA builds the single-file bundle.
func runSPA(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseSPAFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: spa takes at most one source directory", ErrUsage)
	}

	s, err := newSession(flags.build.common, env, func(cfg *config.Config) {
		mergeSPAFlags(flags, positional, cfg)
	})
	if err != nil {
		return err
	}
	b, err := s.builder()
	if err != nil {
		return err
	}

	spa := s.cfg.SPA
	opts := sitepack.SPAOptions{
		Root:        s.cfg.Source,
		Pages:       spa.Pages,
		DefaultPage: spa.DefaultPage,
		Stylesheet:  spa.Stylesheet,
		Script:      spa.Script,
		Output:      spa.Output,
		Title:       spa.Title,
		Lang:        spa.Lang,
		Dir:         spa.Dir,
		Ignore:      s.ignoreRules(),
		Exclude:     s.outputs(),
	}
	build := func(ctx context.Context) error {
		report, err := b.BuildSPA(ctx, opts)
		if err != nil {
			return err
		}
		printSPAReport(env, flags.build.common, report)
		return nil
	}

	w, err := s.watcherFor(flags.build.watch, s.cfg.Source)
	if err != nil {
		return err
	}
	return runBuild(ctx, build, w)
}

// mergeSPAFlags applies spa command flags to cfg.
func mergeSPAFlags(flags *spaFlags, positional []string, cfg *config.Config) {
	mergeInlineFlags(flags.build.inline, cfg)
	if len(positional) == 1 {
		cfg.Source = positional[0]
	}
	if flags.build.output != "" {
		cfg.SPA.Output = flags.build.output
	}
	if len(flags.pages) > 0 {
		cfg.SPA.Pages = flags.pages
	}
	if flags.defaultPage != "" {
		cfg.SPA.DefaultPage = flags.defaultPage
	}
	if flags.title != "" {
		cfg.SPA.Title = flags.title
	}
	if flags.lang != "" {
		cfg.SPA.Lang = flags.lang
	}
	if flags.dir != "" {
		cfg.SPA.Dir = flags.dir
	}
}

// watcherFor returns nil unless watch is set. extra lists outputs to ignore
// besides the configured ones.
func (s *session) watcherFor(watch bool, root string, extra ...string) (*watcher, error) {
	if !watch {
		return nil, nil
	}
	return newWatcher(root, s.ignoreRules(), append(s.outputs(), extra...), s.logger)
}
