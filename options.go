package sitepack

import (
	"github.com/rs/zerolog"
)

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger that receives progress and warnings.
// The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithMinify minifies inlined stylesheets and scripts before they are embedded.
func WithMinify(enabled bool) Option {
	return func(b *Builder) {
		b.minify = enabled
	}
}

// WithAssetPath loads the bundle skeleton and router from a directory,
// falling back to the built-in ones for files it does not provide.
//
// Expected layout:
//
//	{path}/templates/spa.html
//	{path}/scripts/router.js
func WithAssetPath(path string) Option {
	return func(b *Builder) {
		b.assetPath = path
	}
}
