package pipeline

import "fmt"

// WarningKind classifies a non-fatal inlining failure.
type WarningKind string

const (
	WarnMissing   WarningKind = "missing"   // referenced file does not exist
	WarnRead      WarningKind = "read"      // file exists but could not be read or encoded
	WarnStructure WarningKind = "structure" // expected element (e.g. <body>) not found
	WarnMinify    WarningKind = "minify"    // minifier rejected the text, original kept
)

// Warning reports a reference that was left untouched.
type Warning struct {
	Kind WarningKind
	Ref  string // reference as written in the document
	Path string // resolved filesystem path, empty when not applicable
	Err  error
}

func (w Warning) String() string {
	switch {
	case w.Path != "" && w.Err != nil:
		return fmt.Sprintf("%s: %s (%s): %v", w.Kind, w.Ref, w.Path, w.Err)
	case w.Path != "":
		return fmt.Sprintf("%s: %s (%s)", w.Kind, w.Ref, w.Path)
	case w.Err != nil:
		return fmt.Sprintf("%s: %s: %v", w.Kind, w.Ref, w.Err)
	}
	return fmt.Sprintf("%s: %s", w.Kind, w.Ref)
}
