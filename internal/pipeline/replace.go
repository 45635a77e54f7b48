package pipeline

import (
	"regexp"
	"strings"
)

// replaceMatch calls fn with every match of re (and its submatch indexes)
// and splices the returned text in place of the match. Matches for which fn
// returns false, and all text between matches, are copied unchanged.
func replaceMatch(re *regexp.Regexp, s string, fn func(match string, loc []int) (string, bool)) string {
	var b strings.Builder
	last, changed := 0, false
	for _, loc := range re.FindAllStringSubmatchIndex(s, -1) {
		repl, ok := fn(s[loc[0]:loc[1]], loc)
		if !ok {
			continue
		}
		if !changed {
			b.Grow(len(s))
			changed = true
		}
		b.WriteString(s[last:loc[0]])
		b.WriteString(repl)
		last = loc[1]
	}
	if !changed {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// Value alternatives shared by attribute and url() patterns: double-quoted,
// single-quoted, bare. Exactly one of the three groups participates.
const (
	groupDouble = 1
	groupSingle = 2
	groupBare   = 3
)

// attrPatterns match name="v", name='v' and name=v. The leading \s keeps
// "data-src" from matching "src" and "srcset" has no '=' after "src".
var attrPatterns = map[string]*regexp.Regexp{
	"href": regexp.MustCompile(`(?i)\shref\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`),
	"src":  regexp.MustCompile(`(?i)\ssrc\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`),
	"rel":  regexp.MustCompile(`(?i)\srel\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`),
	"type": regexp.MustCompile(`(?i)\stype\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`),
}

// valueGroup returns the participating value group of loc and its span.
func valueGroup(loc []int) (group, start, end int) {
	for g := groupDouble; g <= groupBare; g++ {
		if 2*g+1 < len(loc) && loc[2*g] >= 0 {
			return g, loc[2*g], loc[2*g+1]
		}
	}
	return 0, -1, -1
}

// attrValue returns the value of attribute name in tag.
func attrValue(tag, name string) (string, bool) {
	loc := attrPatterns[name].FindStringSubmatchIndex(tag)
	if loc == nil {
		return "", false
	}
	_, start, end := valueGroup(loc)
	if start < 0 {
		return "", true
	}
	return tag[start:end], true
}

// replaceAttr rewrites the value of attribute name in tag with fn.
// A bare (unquoted) value is replaced by a double-quoted one.
func replaceAttr(tag, name string, fn func(value string) (string, bool)) (string, bool) {
	loc := attrPatterns[name].FindStringSubmatchIndex(tag)
	if loc == nil {
		return tag, false
	}
	group, start, end := valueGroup(loc)
	if start < 0 {
		return tag, false
	}
	val, ok := fn(tag[start:end])
	if !ok {
		return tag, false
	}
	if group == groupBare {
		val = `"` + val + `"`
	}
	return tag[:start] + val + tag[end:], true
}

// hasToken reports whether the space-separated list contains tok (case-insensitive).
func hasToken(list, tok string) bool {
	for _, f := range strings.Fields(list) {
		if strings.EqualFold(f, tok) {
			return true
		}
	}
	return false
}

// commentSafe keeps a reference from closing the /* */ comment it is printed in.
func commentSafe(s string) string {
	return strings.ReplaceAll(s, "*/", "*\\/")
}
