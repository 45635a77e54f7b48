package pipeline

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// bodyPattern is greedy so a "</body>" inside an inline script does not
// cut the page short.
var bodyPattern = regexp.MustCompile(`(?is)<body\b[^>]*>(.*)</body\s*>`)

// ExtractBody returns the content between <body> and </body>.
// Returns false if the document has no body element.
func ExtractBody(document string) (string, bool) {
	m := bodyPattern.FindStringSubmatch(document)
	if m == nil {
		return "", false
	}
	return m[1], true
}

var headPattern = regexp.MustCompile(`(?is)<head\b[^>]*>.*?</head\s*>`)

// MapHead replaces the <head> element of document with fn applied to it.
// A document without a head is returned unchanged.
func MapHead(document string, fn func(head string) string) string {
	loc := headPattern.FindStringIndex(document)
	if loc == nil {
		return document
	}
	return document[:loc[0]] + fn(document[loc[0]:loc[1]]) + document[loc[1]:]
}

// Head describes the <head> of a page reused as the skeleton of a bundle.
type Head struct {
	Content string // inner HTML with local stylesheets and scripts, charset, viewport and title removed
	Title   string
	Lang    string // lang attribute of <html>
	Dir     string // dir attribute of <html>
}

// headStripSelector lists head elements the bundle skeleton provides itself.
const headStripSelector = "meta[charset], meta[name='viewport'], title"

// ExtractHead parses document and returns its head, minus the elements the
// bundle skeleton provides and any local stylesheet or script still linked.
// Callers inline the local ones first (see MapHead); what remains could not
// be read. Stylesheets and scripts served from elsewhere (CDN fonts, icon
// sets) stay in the head.
func ExtractHead(document string) (Head, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return Head{}, err
	}

	root := doc.Find("html").First()
	head := doc.Find("head").First()

	h := Head{Title: strings.TrimSpace(head.Find("title").First().Text())}
	h.Lang, _ = root.Attr("lang")
	h.Dir, _ = root.Attr("dir")

	head.Find(headStripSelector).Remove()
	head.Find("link[rel~='stylesheet'], script[src]").Each(func(_ int, sel *goquery.Selection) {
		ref, ok := sel.Attr("href")
		if !ok {
			ref, _ = sel.Attr("src")
		}
		if !IsExternal(ref) {
			sel.Remove()
		}
	})
	content, err := head.Html()
	if err != nil {
		return Head{}, err
	}
	h.Content = strings.TrimSpace(content)
	return h, nil
}
