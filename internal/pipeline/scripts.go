package pipeline

import (
	"regexp"
	"strings"
)

// scriptTagPattern matches <script ...></script> with a whitespace-only body.
var scriptTagPattern = regexp.MustCompile(`(?is)<script\b([^>]*)>\s*</script\s*>`)

var scriptClosePattern = regexp.MustCompile(`(?i)</script`)

// InlineScripts replaces every empty <script src> pointing at a local file
// with an inline <script> holding the file's text. A type attribute (e.g.
// "module") is carried over; other attributes only make sense for external
// scripts and are dropped.
func InlineScripts(html, baseDir string, minifier Minifier) (string, []Warning) {
	var warnings []Warning
	out := replaceMatch(scriptTagPattern, html, func(tag string, _ []int) (string, bool) {
		src, ok := attrValue(tag, "src")
		if !ok || IsExternal(src) {
			return "", false
		}

		text, w := readText(ResolvePath(baseDir, src), src)
		if w != nil {
			warnings = append(warnings, *w)
			return "", false
		}
		text = minifyText(minifier, MediaJS, text, src, &warnings)

		open := "<script>"
		if typ, ok := attrValue(tag, "type"); ok && typ != "" {
			open = `<script type="` + typ + `">`
		}
		return scriptBlock(open, src, text), true
	})
	return out, warnings
}

// ScriptBlock wraps JS in a <script> element, noting where it came from
// unless origin is empty.
func ScriptBlock(origin, jsText string) string {
	return scriptBlock("<script>", origin, jsText)
}

func scriptBlock(open, origin, jsText string) string {
	var b strings.Builder
	b.WriteString(open)
	b.WriteString("\n")
	if origin != "" {
		b.WriteString("/* Inlined from " + commentSafe(origin) + " */\n")
	}
	b.WriteString(sanitizeJS(jsText))
	b.WriteString("\n</script>")
	return b.String()
}

// sanitizeJS escapes "</script" so inlined code cannot end its element.
func sanitizeJS(jsText string) string {
	return scriptClosePattern.ReplaceAllString(jsText, `<\/script`)
}
