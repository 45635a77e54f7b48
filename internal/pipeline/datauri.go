package pipeline

import (
	"encoding/base64"
	"errors"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMediaType is used when the extension is unknown.
const DefaultMediaType = "application/octet-stream"

// mediaTypes pins the types of common web assets so the result does not
// depend on the host's mime.types files.
var mediaTypes = map[string]string{
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".svg":   "image/svg+xml",
	".webp":  "image/webp",
	".avif":  "image/avif",
	".ico":   "image/vnd.microsoft.icon",
	".bmp":   "image/bmp",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".eot":   "application/vnd.ms-fontobject",
	".css":   "text/css",
	".js":    "text/javascript",
	".json":  "application/json",
	".mp4":   "video/mp4",
	".webm":  "video/webm",
	".mp3":   "audio/mpeg",
}

// MediaType guesses the media type of path from its extension, without parameters.
func MediaType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return DefaultMediaType
	}
	if t, ok := mediaTypes[ext]; ok {
		return t
	}
	t := mime.TypeByExtension(ext)
	if t == "" {
		return DefaultMediaType
	}
	if mt, _, err := mime.ParseMediaType(t); err == nil {
		return mt
	}
	return t
}

// DataURI builds a base64 data URI for content with the given media type.
func DataURI(mediaType string, content []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(content)
}

// encodeFile reads path and returns it as a data URI. On failure it returns
// the warning describing why, with Ref set to ref.
func encodeFile(path, ref string) (string, *Warning) {
	content, err := os.ReadFile(path) // #nosec G304 -- paths come from the site being built
	if err != nil {
		return "", readWarning(path, ref, err)
	}
	return DataURI(MediaType(path), content), nil
}

// readText reads path as text for inlining.
func readText(path, ref string) (string, *Warning) {
	content, err := os.ReadFile(path) // #nosec G304 -- paths come from the site being built
	if err != nil {
		return "", readWarning(path, ref, err)
	}
	return string(content), nil
}

func readWarning(path, ref string, err error) *Warning {
	if errors.Is(err, fs.ErrNotExist) {
		return &Warning{Kind: WarnMissing, Ref: ref, Path: path}
	}
	return &Warning{Kind: WarnRead, Ref: ref, Path: path, Err: err}
}
