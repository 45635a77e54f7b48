package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fixedNow is the clock used by test environments.
var fixedNow = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

// testEnv returns an Environment writing to buffers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

// writeTree writes files (slash paths relative to root) and returns root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
	return root
}

// writeConfig writes a YAML config next to the test's files and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sitepack.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// sampleSite is a two-page site with one stylesheet, image and script.
func sampleSite(t *testing.T) string {
	t.Helper()
	return writeTree(t, map[string]string{
		"index.html":           `<html lang="en"><head><title>Home</title><link rel="stylesheet" href="assets/css/style.css"></head><body><a href="en/about.html">About</a><script src="assets/js/main.js"></script></body></html>`,
		"en/about.html":        `<html><body><a href="../index.html">Home</a><img src="../missing.png"></body></html>`,
		"assets/css/style.css": "body { margin: 0; }",
		"assets/js/main.js":    "console.log('hi');",
	})
}
