package pipeline

import (
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

var linkTagPattern = regexp.MustCompile(`(?is)<link\b[^>]*>`)

// styleURLPattern matches url() tokens written in HTML (style attributes and
// <style> blocks). CSS files go through the tokenizer instead.
var styleURLPattern = regexp.MustCompile(`(?i)\burl\(\s*(?:"([^"]*)"|'([^']*)'|([^\s"')]*))\s*\)`)

// InlineStylesheets replaces every <link rel="stylesheet"> pointing at a
// local file with a <style> block holding the file's CSS. url() references
// inside the CSS are resolved from the stylesheet's directory and embedded.
// If minifier is non-nil the CSS is minified before it is wrapped.
func InlineStylesheets(html, baseDir string, minifier Minifier) (string, []Warning) {
	var warnings []Warning
	out := replaceMatch(linkTagPattern, html, func(tag string, _ []int) (string, bool) {
		rel, _ := attrValue(tag, "rel")
		if !hasToken(rel, "stylesheet") {
			return "", false
		}
		href, ok := attrValue(tag, "href")
		if !ok || IsExternal(href) {
			return "", false
		}

		path := ResolvePath(baseDir, href)
		text, w := readText(path, href)
		if w != nil {
			warnings = append(warnings, *w)
			return "", false
		}

		text, ws := EmbedCSSURLs(text, filepath.Dir(path))
		warnings = append(warnings, ws...)
		text = minifyText(minifier, MediaCSS, text, href, &warnings)

		return StyleBlock(href, text), true
	})
	return out, warnings
}

// StyleBlock wraps CSS in a <style> element, noting where it came from.
func StyleBlock(origin, cssText string) string {
	return "<style>\n/* Inlined from " + commentSafe(origin) + " */\n" + sanitizeCSS(cssText) + "\n</style>"
}

// sanitizeCSS escapes sequences that could close the <style> element early.
func sanitizeCSS(cssText string) string {
	return strings.ReplaceAll(cssText, "</", `<\/`)
}

// EmbedCSSURLs embeds every local url() of a stylesheet as a data URI,
// resolving references from cssDir. Tokens other than url() are copied
// verbatim, so comments and formatting survive.
func EmbedCSSURLs(cssText, cssDir string) (string, []Warning) {
	var warnings []Warning
	var b strings.Builder
	b.Grow(len(cssText))

	l := css.NewLexer(parse.NewInputString(cssText))
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if l.Err() != io.EOF {
				// The tokenizer gave up; keep the stylesheet as written.
				return cssText, warnings
			}
			break
		}
		if tt != css.URLToken {
			b.Write(data)
			continue
		}

		ref := urlTokenValue(string(data))
		if IsExternal(ref) {
			b.Write(data)
			continue
		}
		uri, w := encodeFile(ResolvePath(cssDir, ref), ref)
		if w != nil {
			warnings = append(warnings, *w)
			b.Write(data)
			continue
		}
		b.WriteString(`url("` + uri + `")`)
	}
	return b.String(), warnings
}

// urlTokenValue extracts the reference from a url() token, with or without quotes.
func urlTokenValue(tok string) string {
	if len(tok) < 4 {
		return ""
	}
	v := strings.TrimSuffix(tok[4:], ")") // drop "url(" in any case
	v = strings.TrimSpace(v)
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		v = v[1 : len(v)-1]
	}
	return v
}

// EmbedStyleURLs embeds local url() references written directly in HTML,
// resolving them from baseDir. The quoting of each url() is kept so the
// token stays valid inside style attributes.
func EmbedStyleURLs(html, baseDir string) (string, []Warning) {
	var warnings []Warning
	out := replaceMatch(styleURLPattern, html, func(match string, loc []int) (string, bool) {
		rel := make([]int, len(loc))
		for i, v := range loc {
			rel[i] = v - loc[0]
			if v < 0 {
				rel[i] = -1
			}
		}
		group, start, end := valueGroup(rel)
		if start < 0 {
			return "", false
		}
		ref := match[start:end]
		if IsExternal(ref) {
			return "", false
		}
		uri, w := encodeFile(ResolvePath(baseDir, ref), ref)
		if w != nil {
			warnings = append(warnings, *w)
			return "", false
		}
		switch group {
		case groupSingle:
			return "url('" + uri + "')", true
		case groupDouble:
			return `url("` + uri + `")`, true
		}
		// Base64 payloads need no quotes, and bare values may sit inside a
		// double-quoted style attribute.
		return "url(" + uri + ")", true
	})
	return out, warnings
}
