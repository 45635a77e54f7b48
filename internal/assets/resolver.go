package assets

import "errors"

// AssetResolver looks an asset up in a list of loaders, in order, moving on
// only when a loader does not have it. The embedded loader is always last.
type AssetResolver struct {
	chain []AssetLoader
}

// NewAssetResolver creates an AssetResolver that prefers files under
// customBasePath, if set, to the embedded ones.
// Returns ErrInvalidBasePath if customBasePath is not a directory.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{}
	if customBasePath != "" {
		custom, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.chain = append(r.chain, custom)
	}
	r.chain = append(r.chain, NewEmbeddedLoader())
	return r, nil
}

// LoadTemplate implements AssetLoader.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadTemplate(name) })
}

// LoadScript implements AssetLoader.
func (r *AssetResolver) LoadScript(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadScript(name) })
}

// first returns the result of the first loader that has the asset.
// Errors other than "not found" stop the search.
func (r *AssetResolver) first(load func(AssetLoader) (string, error)) (string, error) {
	var err error
	for _, l := range r.chain {
		var content string
		content, err = load(l)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, ErrTemplateNotFound) && !errors.Is(err, ErrScriptNotFound) {
			return "", err
		}
	}
	return "", err
}

var _ AssetLoader = (*AssetResolver)(nil)
