package assets

import "errors"

// Sentinel errors for asset loading.
var (
	ErrTemplateNotFound = errors.New("bundle template not found")
	ErrScriptNotFound   = errors.New("bundle script not found")
	ErrInvalidAssetName = errors.New("invalid asset name") // separators, dots or empty
	ErrInvalidBasePath  = errors.New("invalid asset directory")
	ErrAssetRead        = errors.New("failed to read asset")
	ErrPathTraversal    = errors.New("asset path escapes its directory")
)
