package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-sitepack/internal/config"
	"github.com/alnah/go-sitepack/internal/fixup"
	"github.com/alnah/go-sitepack/internal/hints"
)

// runFixup applies the named rules, or lists them with --list.
// Missing files and files without a match are reported, not errors.
func runFixup(ctx context.Context, args []string, env *Environment) error {
	flags, names, err := parseFixupFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}

	s, err := newSession(flags.common, env, nil)
	if err != nil {
		return err
	}
	registry, err := fixup.NewRegistry(s.cfg.Fixups)
	if err != nil {
		return err
	}

	if flags.list {
		printRules(env, registry, s.cfg.Fixups)
		return nil
	}
	if len(names) == 0 {
		return fmt.Errorf("%w: name at least one rule%s", ErrUsage, hints.ForUnknownFixup(registry.Names()))
	}

	rules := make([]*fixup.Rule, 0, len(names))
	for _, name := range names {
		rule, err := registry.Lookup(name)
		if err != nil {
			return fmt.Errorf("%w%s", err, hints.ForUnknownFixup(registry.Names()))
		}
		rules = append(rules, rule)
	}

	failed := 0
	for _, rule := range rules {
		s.logger.Info().Str("rule", rule.Name).Bool("dryRun", flags.dryRun).Msg("Applying fixup")
		results, err := fixup.Apply(ctx, rule, s.cfg.Source, flags.dryRun)
		printFixupResults(env, flags, rule.Name, results)
		if err != nil {
			return err
		}
		for _, r := range results {
			if r.Status == fixup.StatusFailed {
				s.logger.Error().Err(r.Err).Str("rule", rule.Name).Str("file", r.File).Msg("Fixup failed")
				failed++
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d", ErrFixupFailed, failed)
	}
	return nil
}

func printFixupResults(env *Environment, flags *fixupFlags, rule string, results []fixup.Result) {
	if flags.common.quiet {
		return
	}
	verb := "fixed"
	if flags.dryRun {
		verb = "would fix"
	}
	for _, r := range results {
		switch r.Status {
		case fixup.StatusFixed:
			fmt.Fprintf(env.Stdout, "%s: %s %s (%d)\n", rule, verb, r.File, r.Count)
		case fixup.StatusNotFound:
			fmt.Fprintf(env.Stdout, "%s: no match in %s\n", rule, r.File)
		case fixup.StatusSkipped:
			fmt.Fprintf(env.Stdout, "%s: skipping %s (not found)\n", rule, r.File)
		case fixup.StatusFailed:
			fmt.Fprintf(env.Stdout, "%s: failed %s\n", rule, r.File)
		}
	}
}

// printRules lists every rule with its origin and file count.
func printRules(env *Environment, registry *fixup.Registry, custom []config.FixupRule) {
	fromConfig := make(map[string]bool, len(custom))
	for _, c := range custom {
		fromConfig[c.Name] = true
	}
	for _, name := range registry.Names() {
		rule, err := registry.Lookup(name)
		if err != nil {
			continue
		}
		origin := "built-in"
		if fromConfig[name] {
			origin = "config"
		}
		fmt.Fprintf(env.Stdout, "%-16s %-8s %s\n", name, origin, plural(len(rule.Files), "file"))
	}
}
