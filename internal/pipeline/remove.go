package pipeline

import "path/filepath"

// RemoveReferences deletes the <link rel="stylesheet"> and empty
// <script src> elements of html whose local target resolves to one of
// paths. It returns the new text and the number of elements removed.
//
// A bundle embeds the site-wide stylesheet and script once; the copies each
// page links to would otherwise load them a second time.
func RemoveReferences(html, baseDir string, paths ...string) (string, int) {
	targets := make(map[string]bool, len(paths))
	for _, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			targets[abs] = true
		}
	}
	if len(targets) == 0 {
		return html, 0
	}

	refersToTarget := func(ref string) bool {
		if IsExternal(ref) {
			return false
		}
		abs, err := filepath.Abs(ResolvePath(baseDir, ref))
		return err == nil && targets[abs]
	}

	removed := 0
	html = replaceMatch(linkTagPattern, html, func(tag string, _ []int) (string, bool) {
		rel, _ := attrValue(tag, "rel")
		href, ok := attrValue(tag, "href")
		if !ok || !hasToken(rel, "stylesheet") || !refersToTarget(href) {
			return "", false
		}
		removed++
		return "", true
	})
	html = replaceMatch(scriptTagPattern, html, func(tag string, _ []int) (string, bool) {
		src, ok := attrValue(tag, "src")
		if !ok || !refersToTarget(src) {
			return "", false
		}
		removed++
		return "", true
	})
	return html, removed
}
