package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	sitepack "github.com/alnah/go-sitepack"
	"github.com/alnah/go-sitepack/internal/fileutil"
)

// debounceDelay is how long changes must settle before a rebuild starts.
// Editors often write a file several times when saving.
const debounceDelay = 300 * time.Millisecond

// watchedExt lists the file types that can change a build's output.
var watchedExt = map[string]bool{
	".html": true, ".htm": true, ".css": true, ".js": true, ".mjs": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".svg": true,
	".webp": true, ".avif": true, ".ico": true, ".bmp": true,
	".woff": true, ".woff2": true, ".ttf": true, ".otf": true,
}

// watcher reruns a build whenever a source file under root changes.
type watcher struct {
	root    string // absolute
	ignore  sitepack.IgnoreRules
	exclude []string // build outputs, never watched
	logger  zerolog.Logger
	delay   time.Duration
}

func newWatcher(root string, ignore sitepack.IgnoreRules, exclude []string, logger zerolog.Logger) (*watcher, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatch, err)
	}
	return &watcher{root: abs, ignore: ignore, exclude: exclude, logger: logger, delay: debounceDelay}, nil
}

// run blocks until ctx is done, calling build after each burst of changes.
// A failed rebuild is logged and watching continues. Each rebuild starts
// from scratch.
func (w *watcher) run(ctx context.Context, build func(context.Context) error) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWatch, err)
	}
	defer fw.Close()

	if err := w.addTree(fw, w.root); err != nil {
		return fmt.Errorf("%w: %v", ErrWatch, err)
	}
	w.logger.Info().Str("root", w.root).Msg("Watching for changes (Ctrl+C to stop)")

	timer := time.NewTimer(w.delay)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					// New directories are not covered by the existing watches.
					if err := w.addTree(fw, event.Name); err != nil {
						w.logger.Warn().Err(err).Str("dir", event.Name).Msg("Cannot watch new directory")
					}
				}
			}
			if !w.relevant(event.Name) {
				continue
			}
			w.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("Change detected")
			timer.Reset(w.delay)

		case <-timer.C:
			w.logger.Info().Msg("Rebuilding")
			if err := build(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				w.logger.Error().Err(err).Msg("Rebuild failed")
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("Watcher error")
		}
	}
}

// addTree watches dir and every directory below it that is not ignored or
// a build output.
func (w *watcher) addTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != w.root && (w.excluded(p) || w.ignore.SkipsDir(w.rel(p))) {
			return filepath.SkipDir
		}
		return fw.Add(p)
	})
}

// relevant reports whether a change to name can affect the build.
func (w *watcher) relevant(name string) bool {
	if !watchedExt[strings.ToLower(filepath.Ext(name))] {
		return false
	}
	if w.excluded(name) {
		return false
	}
	return !w.ignore.SkipsFile(w.rel(name))
}

func (w *watcher) excluded(name string) bool {
	for _, e := range w.exclude {
		if fileutil.IsWithin(name, e) {
			return true
		}
	}
	return false
}

func (w *watcher) rel(name string) string {
	rel, err := filepath.Rel(w.root, name)
	if err != nil {
		return filepath.ToSlash(name)
	}
	return filepath.ToSlash(rel)
}

// runBuild runs build once and, when watch is set, keeps rebuilding on
// changes until the context is cancelled.
func runBuild(ctx context.Context, build func(context.Context) error, w *watcher) error {
	if err := build(ctx); err != nil {
		return err
	}
	if w == nil {
		return nil
	}
	return w.run(ctx, build)
}
