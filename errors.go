package sitepack

import "errors"

// Sentinel errors for library operations.
var (
	ErrSourceNotFound   = errors.New("source not found")
	ErrUnsafeOutputDir  = errors.New("output directory would contain the source")
	ErrOutputWrite      = errors.New("failed to write output")
	ErrNoPages          = errors.New("no pages to bundle")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrTemplateRender   = errors.New("bundle template rendering failed")
)
