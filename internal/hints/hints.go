// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"runtime"
	"strings"

	"github.com/alnah/go-sitepack/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config, sitepack init, or a config in ~/.config/go-sitepack/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml, run 'sitepack init'"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-sitepack") {
			hint += ", or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnsafeOutput returns hints when the output directory would delete the sources.
func ForUnsafeOutput() string {
	return format("the output directory is emptied before each build; choose one outside the source (site.output)")
}

// ForSourceNotFound returns hints for a missing site root or page.
func ForSourceNotFound() string {
	return format("set source: in the config or run from the site root")
}

// ForNoPages returns hints when a bundle would contain no page.
func ForNoPages() string {
	return format("list pages under spa.pages or check that the source contains HTML files")
}

// ForAssetPath returns hints for an invalid custom asset directory.
func ForAssetPath() string {
	return format("--asset-path must be a directory containing templates/spa.html or scripts/router.js")
}

// ForUnknownFixup returns hints listing the fixup rules that exist.
func ForUnknownFixup(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForWatch returns hints for file watcher setup errors.
func ForWatch() string {
	var hints []string
	if runtime.GOOS == "linux" {
		hints = append(hints, "raise fs.inotify.max_user_watches for large sites")
	}
	if IsInContainer() {
		hints = append(hints, "changes made on the host may not reach a container through bind mounts")
	}
	return formatHints(hints)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
