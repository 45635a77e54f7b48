package pipeline

import (
	"io"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteLinks rewrites the href of every internal <a> in an HTML body
// fragment to a page key: the target path resolved against pageDir, with
// forward slashes, relative to the bundle root.
//
// pageDir is the slash-separated directory of the page inside the bundle
// ("." for the root). From "en", "about.html" becomes "en/about.html" and
// "../index.html" becomes "index.html". Fragments are kept ("about.html#team"
// -> "en/about.html#team"); the router ignores them when picking a page.
//
// The fragment is tokenized, not parsed into a tree: every token is copied
// as written and only the href value of internal links changes. Markup
// inside <script>, <style> and comments is never taken for a link.
// External links (http, #, mailto:, tel:, javascript:) are left alone.
func RewriteLinks(fragment, pageDir string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	b.Grow(len(fragment))
	for {
		tt := z.Next()
		// Raw must be copied before TagName, which lowercases the buffer.
		raw := string(z.Raw())
		switch tt {
		case html.ErrorToken:
			b.WriteString(raw)
			if err := z.Err(); err != io.EOF {
				return "", err
			}
			return b.String(), nil
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); atom.Lookup(name) == atom.A {
				raw = rewriteHref(raw, pageDir)
			}
		}
		b.WriteString(raw)
	}
}

// rewriteHref replaces the href of a raw <a> start tag with its page key.
// The quoting of the value is kept; a bare value gets double quotes.
func rewriteHref(tag, pageDir string) string {
	out, _ := replaceAttr(tag, "href", func(value string) (string, bool) {
		href := html.UnescapeString(value)
		if !isNavigable(href) {
			return "", false
		}
		return html.EscapeString(PageKey(pageDir, href)), true
	})
	return out
}

// PageKey resolves href (as written on a page in pageDir) to a page key.
func PageKey(pageDir, href string) string {
	href = strings.ReplaceAll(href, `\`, "/")
	target, suffix := href, ""
	if i := strings.IndexAny(href, "?#"); i != -1 {
		target, suffix = href[:i], href[i:]
	}
	if target == "" {
		return href
	}
	var key string
	if strings.HasPrefix(target, "/") {
		key = strings.TrimPrefix(path.Clean(target), "/")
	} else {
		key = path.Clean(path.Join(pageDir, target))
	}
	// Query strings have no meaning for an in-page container.
	if strings.HasPrefix(suffix, "?") {
		if i := strings.Index(suffix, "#"); i != -1 {
			suffix = suffix[i:]
		} else {
			suffix = ""
		}
	}
	return key + suffix
}

// isNavigable returns true if href points at another page of the site.
func isNavigable(href string) bool {
	if IsExternal(href) {
		return false
	}
	return !strings.HasPrefix(strings.ToLower(strings.TrimSpace(href)), "javascript:")
}
