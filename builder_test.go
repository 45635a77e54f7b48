package sitepack

// Notes:
// - Inline is tested end to end against temp directories; pass details are
//   covered in internal/pipeline.
// - Logging is checked by decoding zerolog JSON lines from a buffer.

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewBuilder(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		b := newTestBuilder(t)
		if b.minifier != nil {
			t.Error("minifier should be nil by default")
		}
		if b.assets == nil {
			t.Error("assets loader should be set")
		}
	})

	t.Run("minify", func(t *testing.T) {
		t.Parallel()

		b := newTestBuilder(t, WithMinify(true))
		if b.minifier == nil {
			t.Error("WithMinify(true) should set a minifier")
		}
	})

	t.Run("valid asset path", func(t *testing.T) {
		t.Parallel()

		newTestBuilder(t, WithAssetPath(t.TempDir()))
	})

	t.Run("invalid asset path", func(t *testing.T) {
		t.Parallel()

		_, err := NewBuilder(WithAssetPath(filepath.Join(t.TempDir(), "nope")))
		if !errors.Is(err, ErrInvalidAssetPath) {
			t.Errorf("NewBuilder() error = %v, want ErrInvalidAssetPath", err)
		}
	})
}

func TestBuilder_Inline(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"assets/css/style.css": ".hero{background:url(../images/bg.png)}",
		"assets/images/bg.png": string(pngBytes),
		"assets/js/main.js":    "menu();",
		"logo.png":             string(pngBytes),
	})

	doc := `<html><head><link rel="stylesheet" href="assets/css/style.css"></head>` +
		`<body><img src="logo.png"><a href="mailto:x@y.z">mail</a>` +
		`<script src="assets/js/main.js"></script></body></html>`

	html, warnings := newTestBuilder(t).Inline(Document{HTML: doc, BaseDir: root})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	for _, gone := range []string{"<link", `src="logo.png"`, `src="assets/js/main.js"`, "url(../images/bg.png)"} {
		if strings.Contains(html, gone) {
			t.Errorf("%q should have been inlined:\n%s", gone, html)
		}
	}
	for _, want := range []string{
		"/* Inlined from assets/css/style.css */",
		`url("data:image/png;base64,`,
		`<img src="data:image/png;base64,`,
		"/* Inlined from assets/js/main.js */\nmenu();",
		`<a href="mailto:x@y.z">mail</a>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q:\n%s", want, html)
		}
	}

	again, warnings := newTestBuilder(t).Inline(Document{HTML: html, BaseDir: root})
	if again != html || len(warnings) != 0 {
		t.Error("inlining its own output should change nothing")
	}
}

func TestBuilder_Inline_Minify(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"style.css": "body {\n  margin: 0;\n}\n",
	})

	html, _ := newTestBuilder(t, WithMinify(true)).Inline(Document{
		HTML:    `<link rel="stylesheet" href="style.css">`,
		BaseDir: root,
	})
	if !strings.Contains(html, "body{margin:0}") {
		t.Errorf("expected minified CSS:\n%s", html)
	}
}

func TestBuilder_LogsWarnings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	b := newTestBuilder(t, WithLogger(zerolog.New(&buf)))

	_, warnings := b.Inline(Document{HTML: `<img src="gone.png">`, BaseDir: t.TempDir()})
	b.logWarnings("index.html", warnings)

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log output is not one JSON line: %v\n%s", err, buf.String())
	}
	want := map[string]string{
		"level": "warn",
		"file":  "index.html",
		"kind":  "missing",
		"ref":   "gone.png",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("log field %s = %v, want %q", k, entry[k], v)
		}
	}
	if _, ok := entry["path"]; !ok {
		t.Error("log entry should carry the resolved path")
	}
}

func TestWarningMessage(t *testing.T) {
	t.Parallel()

	for _, kind := range []WarningKind{WarnMissing, WarnRead, WarnStructure, WarnMinify, "other"} {
		if warningMessage(kind) == "" {
			t.Errorf("warningMessage(%q) is empty", kind)
		}
	}
}
