// Package sitepack turns a multi-page static website into self-contained
// HTML files by inlining stylesheets, scripts and images.
//
// # Quick Start
//
//	b, err := sitepack.NewBuilder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := b.BuildStandalone(ctx, sitepack.StandaloneOptions{
//	    Input: "site/index.html",
//	})
//
// # Build Modes
//
// BuildSite mirrors every HTML page of a directory tree into an output
// directory, each page made self-contained. Links between pages keep working
// because the tree layout is kept.
//
// BuildStandalone produces one file from one page.
//
// BuildSPA bundles many pages into a single document. Each page body becomes
// a hidden container keyed by the page path ("en/about.html"), and an
// embedded router shows one container at a time when internal links are
// clicked.
//
// # Inlining
//
// Pages go through three passes, in this order:
//
//  1. <link rel="stylesheet"> becomes <style>; url() references inside the
//     CSS are resolved from the stylesheet's directory and embedded
//  2. <img src> becomes a base64 data URI
//  3. empty <script src> becomes an inline <script>
//
// References starting with http, data:, #, mailto: or tel: are never
// touched, so running a build on its own output changes nothing. A file that
// cannot be read is reported as a Warning and the reference is kept as
// written; warnings never fail a build.
//
// # Configuration
//
//	b, err := sitepack.NewBuilder(
//	    sitepack.WithLogger(logger),           // zerolog.Logger
//	    sitepack.WithMinify(true),             // minify inlined CSS and JS
//	    sitepack.WithAssetPath("./my-assets"), // custom spa.html / router.js
//	)
package sitepack
