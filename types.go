package sitepack

import "github.com/alnah/go-sitepack/internal/pipeline"

// Warning reports a reference or page that was left out or left as written.
// Warnings never stop a build.
type Warning = pipeline.Warning

// WarningKind classifies a Warning.
type WarningKind = pipeline.WarningKind

// Warning kinds.
const (
	WarnMissing   = pipeline.WarnMissing
	WarnRead      = pipeline.WarnRead
	WarnStructure = pipeline.WarnStructure
	WarnMinify    = pipeline.WarnMinify
)

// Document is an HTML text and the directory its relative references are
// resolved from.
type Document struct {
	HTML    string
	BaseDir string
}

// FileReport lists the warnings raised while processing one file.
type FileReport struct {
	Path     string // relative to the source, forward slashes
	Warnings []Warning
}

// SiteReport summarizes a directory build.
type SiteReport struct {
	Output string
	Files  []FileReport
}

// WarningCount returns the number of warnings across all files.
func (r *SiteReport) WarningCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Warnings)
	}
	return n
}

// StandaloneReport summarizes a single page build.
type StandaloneReport struct {
	Output   string
	SizeKB   int64
	Warnings []Warning
}

// PageReport describes one page of a bundle.
type PageReport struct {
	Key      string
	Included bool // false when the page was missing or had no body
	Warnings []Warning
}

// SPAReport summarizes a bundle build.
type SPAReport struct {
	Output   string
	SizeKB   int64
	Pages    []PageReport
	Warnings []Warning // default page head, global stylesheet and script
}

// WarningCount returns the number of warnings across pages and globals.
func (r *SPAReport) WarningCount() int {
	n := len(r.Warnings)
	for _, p := range r.Pages {
		n += len(p.Warnings)
	}
	return n
}
