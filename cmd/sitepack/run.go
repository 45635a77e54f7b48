package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"

	flag "github.com/spf13/pflag"

	sitepack "github.com/alnah/go-sitepack"
	"github.com/alnah/go-sitepack/internal/config"
	"github.com/alnah/go-sitepack/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid arguments")
	ErrUnknownCommand = errors.New("unknown command")
	ErrConfigExists   = errors.New("config file already exists")
	ErrFixupFailed    = errors.New("some files could not be fixed")
	ErrWatch          = errors.New("cannot watch source")
)

// commands lists the subcommands runMain dispatches.
var commands = []string{"site", "standalone", "spa", "fixup", "init", "version", "help"}

// isCommand reports whether name is a subcommand. Matching is case sensitive.
func isCommand(name string) bool {
	for _, c := range commands {
		if c == name {
			return true
		}
	}
	return false
}

// runMain runs the command named by args[1] and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), stopSignals...)
	defer stop()

	cmd, rest := args[1], args[2:]
	var err error
	switch cmd {
	case "site":
		err = runSite(ctx, rest, env)
	case "standalone":
		err = runStandalone(ctx, rest, env)
	case "spa":
		err = runSPA(ctx, rest, env)
	case "fixup":
		err = runFixup(ctx, rest, env)
	case "init":
		err = runInit(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "sitepack %s\n", Version)
	case "help", "-h", "--help":
		runHelp(rest, env)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		if errors.Is(err, ErrUnknownCommand) {
			fmt.Fprintln(env.Stderr)
			printUsage(env.Stderr)
		}
	}
	return exitCodeFor(err)
}

// usageError marks a flag parsing failure so it maps to ExitUsage.
func usageError(err error) error {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(defaultConfigName))
	case errors.Is(err, sitepack.ErrUnsafeOutputDir):
		return hints.ForUnsafeOutput()
	case errors.Is(err, sitepack.ErrOutputWrite):
		return hints.ForOutputDirectory()
	case errors.Is(err, sitepack.ErrSourceNotFound):
		return hints.ForSourceNotFound()
	case errors.Is(err, sitepack.ErrNoPages):
		return hints.ForNoPages()
	case errors.Is(err, sitepack.ErrInvalidAssetPath):
		return hints.ForAssetPath()
	case errors.Is(err, ErrWatch):
		return hints.ForWatch()
	}
	return ""
}
