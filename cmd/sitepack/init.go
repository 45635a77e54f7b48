package main

import (
	"fmt"
	"os"

	sitepack "github.com/alnah/go-sitepack"
	"github.com/alnah/go-sitepack/internal/config"
	"github.com/alnah/go-sitepack/internal/fileutil"
	"github.com/alnah/go-sitepack/internal/yamlutil"
)

// runInit writes the default configuration so it can be edited.
func runInit(args []string, env *Environment) error {
	flags, positional, err := parseInitFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: init takes at most one path", ErrUsage)
	}

	path := defaultConfigName + ".yaml"
	if len(positional) == 1 {
		path = positional[0]
	}
	if !flags.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
		}
	}

	data, err := yamlutil.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := fileutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: %v", sitepack.ErrOutputWrite, err)
	}

	fmt.Fprintf(env.Stdout, "Created %s\n", path)
	return nil
}
