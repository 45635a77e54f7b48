package pipeline

import (
	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minjs "github.com/tdewolff/minify/v2/js"
)

// Media types understood by Minifier implementations.
const (
	MediaCSS = "text/css"
	MediaJS  = "text/javascript"
)

// Minifier shrinks text of a given media type before it is inlined.
type Minifier interface {
	Minify(mediaType, text string) (string, error)
}

// TdewolffMinifier minifies CSS and JS with tdewolff/minify.
type TdewolffMinifier struct {
	m *minify.M
}

// NewMinifier returns a Minifier for MediaCSS and MediaJS.
func NewMinifier() *TdewolffMinifier {
	m := minify.New()
	m.AddFunc(MediaCSS, mincss.Minify)
	m.AddFunc(MediaJS, minjs.Minify)
	return &TdewolffMinifier{m: m}
}

// Minify implements Minifier.
func (t *TdewolffMinifier) Minify(mediaType, text string) (string, error) {
	return t.m.String(mediaType, text)
}

// minifyText runs m over text, falling back to the original text (and
// recording a warning) when the minifier fails. A nil m is a no-op.
func minifyText(m Minifier, mediaType, text, ref string, warnings *[]Warning) string {
	if m == nil {
		return text
	}
	out, err := m.Minify(mediaType, text)
	if err != nil {
		*warnings = append(*warnings, Warning{Kind: WarnMinify, Ref: ref, Err: err})
		return text
	}
	return out
}

var _ Minifier = (*TdewolffMinifier)(nil)
