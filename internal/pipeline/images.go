package pipeline

import "regexp"

var imgTagPattern = regexp.MustCompile(`(?is)<img\b[^>]*>`)

// EmbedImages replaces the src of every <img> that points at a local file
// with a base64 data URI. Only the src value changes; the rest of the tag is
// kept byte for byte. Unreadable sources are reported and left as written.
func EmbedImages(html, baseDir string) (string, []Warning) {
	var warnings []Warning
	out := replaceMatch(imgTagPattern, html, func(tag string, _ []int) (string, bool) {
		return replaceAttr(tag, "src", func(ref string) (string, bool) {
			if IsExternal(ref) {
				return "", false
			}
			uri, w := encodeFile(ResolvePath(baseDir, ref), ref)
			if w != nil {
				warnings = append(warnings, *w)
				return "", false
			}
			return uri, true
		})
	})
	return out, warnings
}
