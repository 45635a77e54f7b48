package pipeline

import (
	"strings"
	"testing"
)

func TestPageKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pageDir string
		href    string
		want    string
	}{
		{".", "about.html", "about.html"},
		{".", "./about.html", "about.html"},
		{".", "en/about.html", "en/about.html"},
		{"en", "about.html", "en/about.html"},
		{"en", "../index.html", "index.html"},
		{"en/team", "../../index.html", "index.html"},
		{"en", "/ar/index.html", "ar/index.html"},
		{"en", "about.html#team", "en/about.html#team"},
		{"en", "about.html?lang=en", "en/about.html"},
		{"en", "about.html?lang=en#team", "en/about.html#team"},
		{"en", `..\index.html`, "index.html"},
		{"en", "?q=1", "?q=1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.pageDir+"|"+tt.href, func(t *testing.T) {
			t.Parallel()
			if got := PageKey(tt.pageDir, tt.href); got != tt.want {
				t.Errorf("PageKey(%q, %q) = %q, want %q", tt.pageDir, tt.href, got, tt.want)
			}
		})
	}
}

func TestRewriteLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		pageDir string
		want    string
	}{
		{
			name:    "relative link from subdirectory",
			input:   `<a href="about.html">About</a>`,
			pageDir: "en",
			want:    `<a href="en/about.html">About</a>`,
		},
		{
			name:    "parent link",
			input:   `<a href="../index.html">Home</a>`,
			pageDir: "en",
			want:    `<a href="index.html">Home</a>`,
		},
		{
			name:    "root page",
			input:   `<nav><a href="en/about.html">EN</a></nav>`,
			pageDir: ".",
			want:    `<nav><a href="en/about.html">EN</a></nav>`,
		},
		{
			name:    "external links untouched",
			input:   `<a href="https://example.org">x</a><a href="#top">t</a><a href="mailto:a@b.c">m</a><a href="tel:+100">p</a>`,
			pageDir: "en",
			want:    `<a href="https://example.org">x</a><a href="#top">t</a><a href="mailto:a@b.c">m</a><a href="tel:+100">p</a>`,
		},
		{
			name:    "javascript link untouched",
			input:   `<a href="javascript:void(0)">menu</a>`,
			pageDir: "en",
			want:    `<a href="javascript:void(0)">menu</a>`,
		},
		{
			name:    "other attributes kept",
			input:   `<a class="btn" href="donate.html" target="_self">Give</a>`,
			pageDir: "ar",
			want:    `<a class="btn" href="ar/donate.html" target="_self">Give</a>`,
		},
		{
			name:    "non-anchor href untouched",
			input:   `<link href="style.css"/><area href="map.html"/>`,
			pageDir: "en",
			want:    `<link href="style.css"/><area href="map.html"/>`,
		},
		{
			name:    "single-quoted external link with entities",
			input:   `<a href='https://x.com/?a=1&b=2'>ext</a>`,
			pageDir: "en",
			want:    `<a href='https://x.com/?a=1&b=2'>ext</a>`,
		},
		{
			name:    "single quotes kept on internal link",
			input:   `<a href='about.html'>About</a>`,
			pageDir: "en",
			want:    `<a href='en/about.html'>About</a>`,
		},
		{
			name:    "uppercase markup and bare value",
			input:   `<A HREF=about.html ONCLICK="track()">About</A>`,
			pageDir: "en",
			want:    `<A HREF="en/about.html" ONCLICK="track()">About</A>`,
		},
		{
			name:    "surrounding markup byte-identical",
			input:   `<table><tr><td>c</td></tr></table>&nbsp;<p ONCLICK="x()">p<br><img src="a.png"></p><!-- <a href="x.html"> -->`,
			pageDir: "en",
			want:    `<table><tr><td>c</td></tr></table>&nbsp;<p ONCLICK="x()">p<br><img src="a.png"></p><!-- <a href="x.html"> -->`,
		},
		{
			name:    "markup inside scripts untouched",
			input:   `<script>var s = '<a href="x.html">';</script><a href="y.html">y</a>`,
			pageDir: ".",
			want:    `<script>var s = '<a href="x.html">';</script><a href="y.html">y</a>`,
		},
		{
			name:    "escaped query dropped from key",
			input:   `<a href="../list.html?a=1&amp;b=2#top">List</a>`,
			pageDir: "en",
			want:    `<a href="list.html#top">List</a>`,
		},
		{
			name:    "nested anchors",
			input:   `<ul><li><a href="a.html">A</a></li><li><a href="b.html">B</a></li></ul>`,
			pageDir: "en",
			want:    `<ul><li><a href="en/a.html">A</a></li><li><a href="en/b.html">B</a></li></ul>`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteLinks(tt.input, tt.pageDir)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RewriteLinks() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestRewriteLinks_KeepsDataURIs(t *testing.T) {
	t.Parallel()

	uri := pngURI()
	got, err := RewriteLinks(`<img src="`+uri+`"/><a href="x.html">x</a>`, ".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, uri) {
		t.Errorf("data URI changed:\n%s", got)
	}
}
