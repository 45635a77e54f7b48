package assets

// Names of the built-in assets.
const (
	// SPATemplateName is the html/template skeleton of a single-page bundle.
	SPATemplateName = "spa"

	// RouterScriptName is the client-side router embedded in a bundle.
	RouterScriptName = "router"
)
