package pipeline

import (
	"path/filepath"
	"strings"
)

// externalPrefixes lists reference prefixes that are never resolved on disk.
// "//" covers protocol-relative URLs.
var externalPrefixes = []string{"http", "data:", "#", "mailto:", "tel:", "//"}

// IsExternal returns true if ref must be left untouched by every pass.
// Empty and whitespace-only references are treated as external too:
// there is nothing to resolve.
func IsExternal(ref string) bool {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return true
	}
	lower := strings.ToLower(ref)
	for _, p := range externalPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// ResolvePath maps a local reference to a filesystem path relative to baseDir.
// Query strings and fragments are dropped ("font.woff?v=2#iefix" -> "font.woff").
// Absolute references are returned cleaned, without joining.
func ResolvePath(baseDir, ref string) string {
	ref = strings.TrimSpace(ref)
	if i := strings.IndexAny(ref, "?#"); i != -1 {
		ref = ref[:i]
	}
	p := filepath.FromSlash(ref)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(baseDir, p))
}
