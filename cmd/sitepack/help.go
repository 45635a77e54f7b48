package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitepack <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  site        Copy a site with every page made self-contained")
	fmt.Fprintln(w, "  standalone  Inline one page into a single file")
	fmt.Fprintln(w, "  spa         Bundle all pages into one navigable file")
	fmt.Fprintln(w, "  fixup       Apply find-and-replace maintenance rules")
	fmt.Fprintln(w, "  init        Write a default config file")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'sitepack help <command>' for details on a specific command.")
}

func printBuildFlags(w io.Writer) {
	fmt.Fprintln(w, "  -w, --watch               Rebuild when source files change")
	fmt.Fprintln(w, "      --minify              Minify inlined CSS and JavaScript")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom bundle template and router")
	printCommonFlags(w)
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show every processed file")
}

// printSiteUsage prints usage for the site command.
func printSiteUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitepack site [source] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a copy of every HTML page under source with its stylesheets,")
	fmt.Fprintln(w, "images and scripts embedded. The output directory is emptied first.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  source    Site root (default: config source, or .)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: offline_site)")
	printBuildFlags(w)
}

// printStandaloneUsage prints usage for the standalone command.
func printStandaloneUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitepack standalone [page] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Embed everything one page references into a single HTML file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  page      Source page (default: index.html under the source)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <file>       Output file (default: <page>_standalone.html)")
	printBuildFlags(w)
}

// printSPAUsage prints usage for the spa command.
func printSPAUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitepack spa [source] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Bundle the pages of a site into one HTML file. Each page becomes a")
	fmt.Fprintln(w, "hidden section; internal links switch sections without a reload.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  source    Site root (default: config source, or .)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <file>       Output file (default: site_all_pages.html)")
	fmt.Fprintln(w, "  -p, --page <path>         Page to include, in order (repeatable;")
	fmt.Fprintln(w, "                            default: every HTML page)")
	fmt.Fprintln(w, "      --default-page <path> Page shown on load (default: index.html)")
	fmt.Fprintln(w, "      --title <s>           Document title (default: from the default page)")
	fmt.Fprintln(w, "      --lang <s>            lang attribute (default: from the default page)")
	fmt.Fprintln(w, "      --dir <s>             Text direction: ltr, rtl, auto")
	printBuildFlags(w)
}

// printFixupUsage prints usage for the fixup command.
func printFixupUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitepack fixup [rule...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Apply find-and-replace rules to the files they list, in place.")
	fmt.Fprintln(w, "Built-in rules: menu-icons, sticky-button. More can be declared")
	fmt.Fprintln(w, "under fixups: in the config file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -n, --dry-run             Report matches without writing")
	fmt.Fprintln(w, "  -l, --list                List available rules")
	printCommonFlags(w)
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitepack init [path] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the default configuration (default path: sitepack.yaml).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --force               Overwrite an existing file")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "site":
		printSiteUsage(env.Stdout)
	case "standalone":
		printStandaloneUsage(env.Stdout)
	case "spa":
		printSPAUsage(env.Stdout)
	case "fixup":
		printFixupUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: sitepack version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: sitepack help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
