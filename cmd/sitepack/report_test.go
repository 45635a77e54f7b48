package main

import (
	"strings"
	"testing"
	"time"

	sitepack "github.com/alnah/go-sitepack"
)

func TestPrintSiteReport(t *testing.T) {
	t.Parallel()

	report := &sitepack.SiteReport{
		Output: "offline_site",
		Files: []sitepack.FileReport{
			{Path: "index.html"},
			{Path: "en/about.html", Warnings: []sitepack.Warning{{Kind: sitepack.WarnMissing}, {Kind: sitepack.WarnMissing}}},
		},
	}

	tests := []struct {
		name  string
		flags commonFlags
		want  string
	}{
		{"default", commonFlags{}, "Created offline_site (2 pages, 2 warnings)\n"},
		{"quiet", commonFlags{quiet: true}, ""},
		{
			"verbose",
			commonFlags{verbose: true},
			"  index.html\n  en/about.html (2 warnings)\nCreated offline_site (2 pages, 2 warnings, 1.5s)\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := testEnv()
			printSiteReport(env, tt.flags, report, 1500*time.Millisecond)
			if got := stdout.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintSPAReport(t *testing.T) {
	t.Parallel()

	report := &sitepack.SPAReport{
		Output: "all.html",
		SizeKB: 120,
		Pages: []sitepack.PageReport{
			{Key: "index.html", Included: true},
			{Key: "gone.html", Warnings: []sitepack.Warning{{Kind: sitepack.WarnMissing}}},
		},
	}

	env, stdout, _ := testEnv()
	printSPAReport(env, commonFlags{verbose: true}, report)

	got := stdout.String()
	if !strings.Contains(got, "skipped gone.html") || !strings.Contains(got, "Created all.html (120 KB, 1 of 2 pages, 1 warning)") {
		t.Errorf("output = %q", got)
	}
}

func TestPlural(t *testing.T) {
	t.Parallel()

	if got := plural(1, "page"); got != "1 page" {
		t.Errorf("plural(1) = %q", got)
	}
	if got := plural(3, "page"); got != "3 pages" {
		t.Errorf("plural(3) = %q", got)
	}
}
