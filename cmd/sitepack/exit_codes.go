package main

import (
	"errors"
	"os"

	sitepack "github.com/alnah/go-sitepack"
	"github.com/alnah/go-sitepack/internal/config"
	"github.com/alnah/go-sitepack/internal/fixup"
)

// Exit codes for the sitepack CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Build or fixup completed, warnings included
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Source not found, output not writable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, sitepack.ErrSourceNotFound) ||
		errors.Is(err, sitepack.ErrOutputWrite) ||
		errors.Is(err, ErrFixupFailed) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrConfigExists) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, sitepack.ErrUnsafeOutputDir) ||
		errors.Is(err, sitepack.ErrNoPages) ||
		errors.Is(err, sitepack.ErrInvalidAssetPath) ||
		errors.Is(err, fixup.ErrUnknownRule) ||
		errors.Is(err, fixup.ErrInvalidRule) {
		return ExitUsage
	}

	return ExitGeneral
}
