package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// inlineFlags holds flags that change how assets are embedded.
type inlineFlags struct {
	minify    bool
	assetPath string // Override bundle template and router directory
}

// buildFlags holds flags shared by the three build commands.
type buildFlags struct {
	common commonFlags
	inline inlineFlags
	output string
	watch  bool
}

// spaFlags holds all flags for the spa command.
type spaFlags struct {
	build       buildFlags
	pages       []string
	defaultPage string
	title       string
	lang        string
	dir         string
}

// fixupFlags holds all flags for the fixup command.
type fixupFlags struct {
	common commonFlags
	dryRun bool
	list   bool
}

// initFlags holds all flags for the init command.
type initFlags struct {
	force bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show every processed file")
}

// addInlineFlags adds asset embedding flags to a FlagSet.
func addInlineFlags(fs *flag.FlagSet, f *inlineFlags) {
	fs.BoolVar(&f.minify, "minify", false, "minify inlined CSS and JavaScript")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom bundle asset directory")
}

// addBuildFlags adds the flags every build command accepts.
func addBuildFlags(fs *flag.FlagSet, f *buildFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.BoolVarP(&f.watch, "watch", "w", false, "rebuild when source files change")
	addCommonFlags(fs, &f.common)
	addInlineFlags(fs, &f.inline)
}

// newFlagSet returns a FlagSet that reports errors to the caller instead of
// exiting, and prints usage to w on -h.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseSiteFlags parses site command flags and returns positional args.
func parseSiteFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	fs := newFlagSet("site", w, printSiteUsage)
	f := &buildFlags{}
	addBuildFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseStandaloneFlags parses standalone command flags and returns positional args.
func parseStandaloneFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	fs := newFlagSet("standalone", w, printStandaloneUsage)
	f := &buildFlags{}
	addBuildFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseSPAFlags parses spa command flags and returns positional args.
func parseSPAFlags(args []string, w io.Writer) (*spaFlags, []string, error) {
	fs := newFlagSet("spa", w, printSPAUsage)
	f := &spaFlags{}
	addBuildFlags(fs, &f.build)

	fs.StringSliceVarP(&f.pages, "page", "p", nil, "page to include, in order (repeatable)")
	fs.StringVar(&f.defaultPage, "default-page", "", "page shown on load")
	fs.StringVar(&f.title, "title", "", "document title")
	fs.StringVar(&f.lang, "lang", "", "lang attribute of the document")
	fs.StringVar(&f.dir, "dir", "", "text direction: ltr, rtl, auto")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseFixupFlags parses fixup command flags and returns the rule names.
func parseFixupFlags(args []string, w io.Writer) (*fixupFlags, []string, error) {
	fs := newFlagSet("fixup", w, printFixupUsage)
	f := &fixupFlags{}
	addCommonFlags(fs, &f.common)

	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "report matches without writing")
	fs.BoolVarP(&f.list, "list", "l", false, "list available rules")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string, w io.Writer) (*initFlags, []string, error) {
	fs := newFlagSet("init", w, printInitUsage)
	f := &initFlags{}

	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing file")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
