package sitepack

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-sitepack/internal/fileutil"
)

// SiteOptions configures a directory build.
type SiteOptions struct {
	Source string // site root
	Output string // emptied and recreated on every build
	Ignore IgnoreRules

	// Exclude lists files or directories never treated as pages, such as
	// the outputs of other build modes.
	Exclude []string
}

// BuildSite mirrors every HTML page under opts.Source into opts.Output with
// its stylesheets, images and scripts inlined. Other files are not copied.
//
// The output directory is removed first. It may live inside the source (it
// is then skipped by the walk) but must not be the source or contain it:
// ErrUnsafeOutputDir is returned before anything is deleted.
//
// Pages that cannot be read are reported and skipped; failing to write the
// output stops the build.
func (b *Builder) BuildSite(ctx context.Context, opts SiteOptions) (*SiteReport, error) {
	source, err := filepath.Abs(opts.Source)
	if err != nil || !fileutil.DirExists(source) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, opts.Source)
	}
	if opts.Output == "" {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, fileutil.ErrEmptyPath)
	}
	output, err := filepath.Abs(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if fileutil.IsWithin(source, output) {
		return nil, fmt.Errorf("%w: %s", ErrUnsafeOutputDir, opts.Output)
	}

	if fileutil.DirExists(output) {
		b.logger.Info().Str("output", opts.Output).Msg("Cleaning existing output")
		if err := os.RemoveAll(output); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
		}
	}
	if err := os.MkdirAll(output, fileutil.DirPerm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	report := &SiteReport{Output: output}
	err = b.walkHTML(ctx, source, opts.Ignore, append([]string{output}, opts.Exclude...), func(rel string) error {
		file, err := b.buildSitePage(source, output, rel)
		report.Files = append(report.Files, file)
		return err
	})
	if err != nil {
		return report, err
	}

	b.logger.Info().
		Int("files", len(report.Files)).
		Int("warnings", report.WarningCount()).
		Str("output", opts.Output).
		Msg("Build complete")
	return report, nil
}

func (b *Builder) buildSitePage(source, output, rel string) (FileReport, error) {
	b.logger.Info().Str("file", rel).Msg("Processing")

	src := filepath.Join(source, filepath.FromSlash(rel))
	content, err := os.ReadFile(src) // #nosec G304 -- found by walking the source
	if err != nil {
		w := readFailure(rel, src, err)
		b.logWarnings(rel, []Warning{w})
		return FileReport{Path: rel, Warnings: []Warning{w}}, nil
	}

	html, warnings := b.Inline(Document{HTML: string(content), BaseDir: filepath.Dir(src)})
	b.logWarnings(rel, warnings)

	dst := filepath.Join(output, filepath.FromSlash(rel))
	if err := fileutil.WriteFile(dst, []byte(html)); err != nil {
		return FileReport{Path: rel, Warnings: warnings}, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return FileReport{Path: rel, Warnings: warnings}, nil
}
