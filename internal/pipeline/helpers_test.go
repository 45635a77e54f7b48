package pipeline

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

// pngBytes is a PNG signature followed by a few bytes; enough to check
// round trips without shipping fixtures.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0x01, 0x02, 0xff}

// writeFile creates dir/rel with content, creating parent directories.
func writeFile(t *testing.T, dir, rel string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
	return path
}

var dataURIPayload = regexp.MustCompile(`data:([a-z0-9.+/-]+);base64,([A-Za-z0-9+/=]+)`)

// decodeFirstDataURI returns the media type and decoded bytes of the first data URI in s.
func decodeFirstDataURI(t *testing.T, s string) (string, []byte) {
	t.Helper()
	m := dataURIPayload.FindStringSubmatch(s)
	if m == nil {
		t.Fatalf("no data URI in:\n%s", s)
	}
	raw, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		t.Fatalf("decoding data URI: %v", err)
	}
	return m[1], raw
}

func pngURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
}
