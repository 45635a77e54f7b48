package main

import (
	"fmt"
	"time"

	sitepack "github.com/alnah/go-sitepack"
)

// printSiteReport prints the outcome of a directory build to stdout.
// Warnings themselves are logged as they happen.
func printSiteReport(env *Environment, f commonFlags, r *sitepack.SiteReport, elapsed time.Duration) {
	if f.quiet {
		return
	}
	if f.verbose {
		for _, file := range r.Files {
			fmt.Fprintf(env.Stdout, "  %s%s\n", file.Path, warningSuffix(len(file.Warnings)))
		}
	}
	fmt.Fprintf(env.Stdout, "Created %s (%d pages%s", r.Output, len(r.Files), warningSuffixInline(r.WarningCount()))
	if f.verbose {
		fmt.Fprintf(env.Stdout, ", %v", elapsed.Round(time.Millisecond))
	}
	fmt.Fprintln(env.Stdout, ")")
}

// printStandaloneReport prints the outcome of a single page build.
func printStandaloneReport(env *Environment, f commonFlags, r *sitepack.StandaloneReport) {
	if f.quiet {
		return
	}
	fmt.Fprintf(env.Stdout, "Created %s (%d KB%s)\n", r.Output, r.SizeKB, warningSuffixInline(len(r.Warnings)))
}

// printSPAReport prints the outcome of a bundle build.
func printSPAReport(env *Environment, f commonFlags, r *sitepack.SPAReport) {
	if f.quiet {
		return
	}
	included := 0
	for _, p := range r.Pages {
		if p.Included {
			included++
		} else if f.verbose {
			fmt.Fprintf(env.Stdout, "  skipped %s\n", p.Key)
		}
	}
	fmt.Fprintf(env.Stdout, "Created %s (%d KB, %d of %d pages%s)\n",
		r.Output, r.SizeKB, included, len(r.Pages), warningSuffixInline(r.WarningCount()))
}

// warningSuffix returns " (n warnings)" or "" when n is 0.
func warningSuffix(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf(" (%s)", plural(n, "warning"))
}

// warningSuffixInline returns ", n warnings" or "" when n is 0.
func warningSuffixInline(n int) string {
	if n == 0 {
		return ""
	}
	return ", " + plural(n, "warning")
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
