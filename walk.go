package sitepack

import (
	"context"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IgnoreRules selects the parts of a source tree a build skips.
type IgnoreRules struct {
	Dirs  []string // directory names, at any depth
	Files []string // file names, at any depth
	Globs []string // doublestar patterns on slash paths relative to the source
}

// SkipsDir reports whether the directory at rel (slash-separated, relative
// to the source) is ignored.
func (r IgnoreRules) SkipsDir(rel string) bool {
	name := path.Base(rel)
	for _, d := range r.Dirs {
		if d == name {
			return true
		}
	}
	return r.matchGlob(rel)
}

// SkipsFile reports whether the file at rel is ignored.
func (r IgnoreRules) SkipsFile(rel string) bool {
	name := path.Base(rel)
	for _, f := range r.Files {
		if f == name {
			return true
		}
	}
	return r.matchGlob(rel)
}

func (r IgnoreRules) matchGlob(rel string) bool {
	for _, g := range r.Globs {
		// Patterns are checked when the config is loaded; a bad one never matches.
		if ok, _ := doublestar.Match(filepath.ToSlash(g), rel); ok {
			return true
		}
	}
	return false
}

// walkHTML calls fn with the slash-separated relative path of every HTML
// file under root, in lexical order. Ignored directories and files, and any
// path listed in exclude, are skipped. An entry below root that cannot be
// read is logged and skipped; only an unreadable root fails the walk. The
// walk stops when ctx is done.
func (b *Builder) walkHTML(ctx context.Context, root string, rules IgnoreRules, exclude []string, fn func(rel string) error) error {
	excluded := make(map[string]bool, len(exclude))
	for _, p := range exclude {
		if abs, err := filepath.Abs(p); err == nil {
			excluded[abs] = true
		}
	}

	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			b.logger.Warn().Err(err).Str("path", p).Msg("Cannot read, skipped")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if p == root {
			return nil
		}

		relPath, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel := filepath.ToSlash(relPath)
		abs, _ := filepath.Abs(p)

		if d.IsDir() {
			if excluded[abs] || rules.SkipsDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !isHTML(d.Name()) {
			return nil
		}
		if excluded[abs] || rules.SkipsFile(rel) {
			return nil
		}
		return fn(rel)
	})
}

func isHTML(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".html")
}
