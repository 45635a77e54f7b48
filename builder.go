package sitepack

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alnah/go-sitepack/internal/assets"
	"github.com/alnah/go-sitepack/internal/pipeline"
)

// Builder runs the inlining passes and the three build modes.
// A Builder holds no per-build state and may be reused.
type Builder struct {
	logger    zerolog.Logger
	minify    bool
	assetPath string

	minifier pipeline.Minifier  // nil when minification is off
	assets   assets.AssetLoader // skeleton and router for bundles
}

// NewBuilder creates a Builder.
// Returns ErrInvalidAssetPath if WithAssetPath names an unusable directory.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		logger: zerolog.Nop(),
		assets: assets.NewEmbeddedLoader(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.assetPath != "" {
		resolver, err := assets.NewAssetResolver(b.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		b.assets = resolver
	}
	if b.minify {
		b.minifier = pipeline.NewMinifier()
	}
	return b, nil
}

// Inline embeds the local stylesheets, images and scripts of doc, in that
// order. Stylesheets go first so url() references inside them are resolved
// from the stylesheet's directory, not the page's.
func (b *Builder) Inline(doc Document) (string, []Warning) {
	var warnings []Warning

	html, ws := pipeline.InlineStylesheets(doc.HTML, doc.BaseDir, b.minifier)
	warnings = append(warnings, ws...)

	html, ws = pipeline.EmbedImages(html, doc.BaseDir)
	warnings = append(warnings, ws...)

	html, ws = pipeline.InlineScripts(html, doc.BaseDir, b.minifier)
	warnings = append(warnings, ws...)

	return html, warnings
}

// logWarnings reports each warning raised while processing file.
func (b *Builder) logWarnings(file string, warnings []Warning) {
	for _, w := range warnings {
		ev := b.logger.Warn().
			Str("file", file).
			Str("kind", string(w.Kind)).
			Str("ref", w.Ref)
		if w.Path != "" {
			ev = ev.Str("path", w.Path)
		}
		if w.Err != nil {
			ev = ev.Err(w.Err)
		}
		ev.Msg(warningMessage(w.Kind))
	}
}

func warningMessage(kind WarningKind) string {
	switch kind {
	case WarnMissing:
		return "File not found, reference kept"
	case WarnRead:
		return "Cannot read file, reference kept"
	case WarnStructure:
		return "Unexpected page structure, page skipped"
	case WarnMinify:
		return "Minification failed, original kept"
	default:
		return "Warning"
	}
}
