// Package pipeline implements the asset inlining passes.
//
// Every pass takes a whole HTML (or CSS) text and returns a new one:
//   - EmbedImages: <img src> to base64 data URIs
//   - InlineStylesheets: <link rel="stylesheet"> to <style>, with url() references
//     inside the stylesheet resolved from the stylesheet's own directory
//   - InlineScripts: empty <script src> to inline <script>
//   - EmbedStyleURLs: url() tokens written directly in HTML
//   - RewriteLinks: <a href> to canonical page keys for single-page bundles
//
// Passes never fail. A reference that cannot be read is left exactly as it
// was and reported as a Warning; the caller decides how to surface it.
//
// Everything outside a rewritten attribute stays byte-identical. Tags are
// located with regular expressions, except in RewriteLinks, which walks the
// golang.org/x/net/html tokenizer and copies each token's raw bytes.
// ExtractHead parses the head with goquery; only the bundle skeleton's head
// is re-rendered.
package pipeline
