// Package assets provides the HTML skeleton and client-side router used to
// assemble single-page bundles.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - custom first, embedded as fallback
//
// A custom directory only needs the files it overrides:
//
//	{basePath}/
//	├── templates/
//	│   └── spa.html     # html/template skeleton of the bundle
//	└── scripts/
//	    └── router.js    # page switching script
//
// # Skeleton Contract
//
// The spa template is executed with fields Lang, Dir, Title, Head, Styles,
// DefaultPage, Pages (Key, Marker, Display, Body), Script and Router. The
// router reads the default page key from the data-default-page attribute of
// #spa-root and toggles elements with class spa-page whose id is
// "page-" + key.
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
