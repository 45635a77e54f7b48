package sitepack

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-sitepack/internal/assets"
	"github.com/alnah/go-sitepack/internal/config"
	"github.com/alnah/go-sitepack/internal/fileutil"
	"github.com/alnah/go-sitepack/internal/pipeline"
)

// Placeholders embedded when a global asset is missing.
const (
	cssNotFound = "/* CSS Not Found */"
	jsNotFound  = "// JS Not Found"
)

// SPAOptions configures a bundle build.
type SPAOptions struct {
	Root        string
	Pages       []string // page keys, relative to Root; empty = every HTML page under Root
	DefaultPage string   // shown on load and for unknown keys (default "index.html")
	Stylesheet  string   // global CSS relative to Root; empty = none
	Script      string   // global JS relative to Root; empty = none
	Output      string
	Title       string // empty = title of the default page
	Lang        string // empty = lang of the default page
	Dir         string // empty = dir of the default page

	// Ignore and Exclude apply when pages are discovered.
	Ignore  IgnoreRules
	Exclude []string
}

// spaDocument is the data the bundle skeleton is executed with.
type spaDocument struct {
	Lang        string
	Dir         string
	Title       string
	Head        template.HTML
	Styles      template.HTML
	DefaultPage string
	Pages       []spaPage
	Script      template.HTML
	Router      template.HTML
}

type spaPage struct {
	Key     string
	Marker  template.HTML
	Display string
	Body    template.HTML
}

// BuildSPA assembles the pages under opts.Root into one document. Each page
// body becomes a hidden container keyed by its path; an embedded router
// shows one container at a time and turns internal links into page switches.
//
// Missing pages and pages without a body are reported and left out. The
// default page must exist: its head is the head of the bundle.
func (b *Builder) BuildSPA(ctx context.Context, opts SPAOptions) (*SPAReport, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil || !fileutil.DirExists(root) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, opts.Root)
	}
	if opts.Output == "" {
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, fileutil.ErrEmptyPath)
	}

	defaultKey := "index.html"
	if opts.DefaultPage != "" {
		if defaultKey, err = config.PageKey(opts.DefaultPage); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, err)
		}
	}

	keys, err := b.pageKeys(ctx, root, defaultKey, opts)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPages, opts.Root)
	}
	if !slices.Contains(keys, defaultKey) {
		return nil, fmt.Errorf("%w: default page %s is not among the pages", ErrNoPages, defaultKey)
	}

	skeleton, err := b.loadSkeleton()
	if err != nil {
		return nil, err
	}

	defaultPath := filepath.Join(root, filepath.FromSlash(defaultKey))
	defaultSource, err := os.ReadFile(defaultPath) // #nosec G304 -- page under root
	if err != nil {
		return nil, fmt.Errorf("%w: default page %s: %v", ErrSourceNotFound, defaultKey, err)
	}
	globals := globalPaths(root, opts.Stylesheet, opts.Script)
	headSource, headWarnings := b.inlineHead(string(defaultSource), filepath.Dir(defaultPath), globals)
	head, err := pipeline.ExtractHead(headSource)
	if err != nil {
		return nil, fmt.Errorf("parsing head of %s: %w", defaultKey, err)
	}

	b.logger.Info().Int("pages", len(keys)).Msg("Building single-file bundle")

	report := &SPAReport{Output: opts.Output, Warnings: headWarnings}
	doc := spaDocument{
		Lang:        firstNonEmpty(opts.Lang, head.Lang),
		Dir:         firstNonEmpty(opts.Dir, head.Dir),
		Title:       firstNonEmpty(opts.Title, head.Title),
		Head:        template.HTML(head.Content), // #nosec G203 -- head of a local page
		DefaultPage: defaultKey,
	}

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		page, pr := b.buildPage(root, key, globals)
		report.Pages = append(report.Pages, pr)
		if !pr.Included {
			continue
		}
		if key == defaultKey {
			page.Display = "block"
		}
		doc.Pages = append(doc.Pages, page)
	}

	var globalWarnings, ws []Warning
	doc.Styles, ws = b.globalStyles(root, opts.Stylesheet)
	globalWarnings = append(globalWarnings, ws...)
	doc.Script, ws = b.globalScript(root, opts.Script)
	globalWarnings = append(globalWarnings, ws...)
	b.logWarnings("(global)", globalWarnings)
	report.Warnings = append(report.Warnings, globalWarnings...)

	router, err := b.assets.LoadScript(assets.RouterScriptName)
	if err != nil {
		return report, fmt.Errorf("loading router: %w", err)
	}
	router = b.minifyAsset(pipeline.MediaJS, router)
	doc.Router = template.HTML(pipeline.ScriptBlock("", router)) // #nosec G203 -- sanitized script block

	var buf bytes.Buffer
	if err := skeleton.Execute(&buf, doc); err != nil {
		return report, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	if err := fileutil.WriteFile(opts.Output, buf.Bytes()); err != nil {
		return report, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	report.SizeKB = fileutil.SizeKB(opts.Output)
	b.logger.Info().
		Str("output", opts.Output).
		Int64("kb", report.SizeKB).
		Int("pages", len(doc.Pages)).
		Int("warnings", report.WarningCount()).
		Msg("Bundle created")
	return report, nil
}

// pageKeys returns the configured pages as keys, or discovers every HTML
// page under root with the default page first.
func (b *Builder) pageKeys(ctx context.Context, root, defaultKey string, opts SPAOptions) ([]string, error) {
	if len(opts.Pages) > 0 {
		keys := make([]string, 0, len(opts.Pages))
		for _, p := range opts.Pages {
			key, err := config.PageKey(p)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, err)
			}
			keys = append(keys, key)
		}
		return keys, nil
	}

	exclude := append([]string{opts.Output}, opts.Exclude...)
	var found []string
	err := b.walkHTML(ctx, root, opts.Ignore, exclude, func(rel string) error {
		found = append(found, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(found))
	for _, k := range found {
		if k == defaultKey {
			keys = append([]string{k}, keys...)
			continue
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (b *Builder) loadSkeleton() (*template.Template, error) {
	text, err := b.assets.LoadTemplate(assets.SPATemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading bundle template: %w", err)
	}
	tmpl, err := template.New(assets.SPATemplateName).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return tmpl, nil
}

// buildPage reads one page and turns its body into a container. References
// to the global assets are dropped: the bundle embeds those once.
func (b *Builder) buildPage(root, key string, globals []string) (spaPage, PageReport) {
	pr := PageReport{Key: key}
	src := filepath.Join(root, filepath.FromSlash(key))

	content, err := os.ReadFile(src) // #nosec G304 -- page under root
	if err != nil {
		pr.Warnings = append(pr.Warnings, readFailure(key, src, err))
		b.logWarnings(key, pr.Warnings)
		return spaPage{}, pr
	}

	b.logger.Info().Str("file", key).Msg("Processing body")
	body, ok := pipeline.ExtractBody(string(content))
	if !ok {
		pr.Warnings = append(pr.Warnings, Warning{Kind: WarnStructure, Ref: "<body>", Path: src})
		b.logWarnings(key, pr.Warnings)
		return spaPage{}, pr
	}

	baseDir := filepath.Dir(src)
	body, removed := pipeline.RemoveReferences(body, baseDir, globals...)
	if removed > 0 {
		b.logger.Debug().Str("file", key).Int("count", removed).Msg("Dropped references to global assets")
	}
	body, ws := pipeline.EmbedImages(body, baseDir)
	pr.Warnings = append(pr.Warnings, ws...)
	body, ws = pipeline.EmbedStyleURLs(body, baseDir)
	pr.Warnings = append(pr.Warnings, ws...)

	if rewritten, err := pipeline.RewriteLinks(body, path.Dir(key)); err != nil {
		pr.Warnings = append(pr.Warnings, Warning{Kind: WarnStructure, Ref: "links", Path: src, Err: err})
	} else {
		body = rewritten
	}
	b.logWarnings(key, pr.Warnings)

	pr.Included = true
	return spaPage{
		Key:     key,
		Marker:  template.HTML("<!-- PAGE: " + commentText(key) + " -->"), // #nosec G203 -- escaped comment
		Display: "none",
		Body:    template.HTML(body), // #nosec G203 -- body of a local page
	}, pr
}

// inlineHead embeds the stylesheets and scripts the default page's head
// links to, except the global ones, which the bundle embeds separately.
func (b *Builder) inlineHead(document, baseDir string, globals []string) (string, []Warning) {
	var warnings []Warning
	document = pipeline.MapHead(document, func(head string) string {
		head, _ = pipeline.RemoveReferences(head, baseDir, globals...)
		var ws []Warning
		head, ws = pipeline.InlineStylesheets(head, baseDir, b.minifier)
		warnings = append(warnings, ws...)
		head, ws = pipeline.InlineScripts(head, baseDir, b.minifier)
		warnings = append(warnings, ws...)
		return head
	})
	b.logWarnings("(head)", warnings)
	return document, warnings
}

// globalPaths returns the filesystem paths of the configured global assets.
func globalPaths(root string, refs ...string) []string {
	var paths []string
	for _, a := range refs {
		if a != "" {
			paths = append(paths, filepath.Join(root, filepath.FromSlash(a)))
		}
	}
	return paths
}

// globalStyles inlines the site-wide stylesheet, resolving its url()
// references from its own directory.
func (b *Builder) globalStyles(root, stylesheet string) (template.HTML, []Warning) {
	if stylesheet == "" {
		return "", nil
	}
	src := filepath.Join(root, filepath.FromSlash(stylesheet))
	content, err := os.ReadFile(src) // #nosec G304 -- configured asset under root
	if err != nil {
		return template.HTML(pipeline.StyleBlock(stylesheet, cssNotFound)), // #nosec G203 -- constant
			[]Warning{readFailure(stylesheet, src, err)}
	}
	css, warnings := pipeline.EmbedCSSURLs(string(content), filepath.Dir(src))
	css = b.minifyAsset(pipeline.MediaCSS, css)
	return template.HTML(pipeline.StyleBlock(stylesheet, css)), warnings // #nosec G203 -- sanitized style block
}

// globalScript inlines the site-wide script.
func (b *Builder) globalScript(root, script string) (template.HTML, []Warning) {
	if script == "" {
		return "", nil
	}
	src := filepath.Join(root, filepath.FromSlash(script))
	content, err := os.ReadFile(src) // #nosec G304 -- configured asset under root
	if err != nil {
		return template.HTML(pipeline.ScriptBlock(script, jsNotFound)), // #nosec G203 -- constant
			[]Warning{readFailure(script, src, err)}
	}
	js := b.minifyAsset(pipeline.MediaJS, string(content))
	return template.HTML(pipeline.ScriptBlock(script, js)), nil // #nosec G203 -- sanitized script block
}

// minifyAsset minifies text when minification is on, keeping the original
// if the minifier rejects it.
func (b *Builder) minifyAsset(mediaType, text string) string {
	if b.minifier == nil {
		return text
	}
	out, err := b.minifier.Minify(mediaType, text)
	if err != nil {
		b.logger.Warn().Err(err).Str("type", mediaType).Msg("Minification failed, original kept")
		return text
	}
	return out
}

func readFailure(ref, path string, err error) Warning {
	if errors.Is(err, os.ErrNotExist) {
		return Warning{Kind: WarnMissing, Ref: ref, Path: path}
	}
	return Warning{Kind: WarnRead, Ref: ref, Path: path, Err: err}
}

// commentText keeps s from ending the HTML comment it is printed in.
func commentText(s string) string {
	return strings.ReplaceAll(s, "--", "- -")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
