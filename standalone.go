package sitepack

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-sitepack/internal/fileutil"
)

// StandaloneOptions configures a single page build.
type StandaloneOptions struct {
	Input  string // source page
	Output string // empty = <name>_standalone.html next to the input
}

// StandaloneOutput returns the default output path for input.
func StandaloneOutput(input string) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(input), name+"_standalone.html")
}

// BuildStandalone inlines everything opts.Input references into one file.
// References are resolved from the directory of the input page.
func (b *Builder) BuildStandalone(ctx context.Context, opts StandaloneOptions) (*StandaloneReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	input, err := filepath.Abs(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, opts.Input)
	}
	content, err := os.ReadFile(input) // #nosec G304 -- user-provided page
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, opts.Input)
		}
		return nil, fmt.Errorf("reading %s: %w", opts.Input, err)
	}

	output := opts.Output
	if output == "" {
		output = StandaloneOutput(opts.Input)
	}

	b.logger.Info().Str("file", opts.Input).Msg("Building standalone file")
	html, warnings := b.Inline(Document{HTML: string(content), BaseDir: filepath.Dir(input)})
	b.logWarnings(opts.Input, warnings)

	if err := fileutil.WriteFile(output, []byte(html)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	report := &StandaloneReport{
		Output:   output,
		SizeKB:   fileutil.SizeKB(output),
		Warnings: warnings,
	}
	b.logger.Info().
		Str("output", output).
		Int64("kb", report.SizeKB).
		Int("warnings", len(warnings)).
		Msg("Standalone file created")
	return report, nil
}
