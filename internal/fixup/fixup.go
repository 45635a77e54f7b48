// Package fixup applies find-and-replace maintenance edits to HTML files in
// place. A rule is a regular expression, a literal replacement and the files
// it applies to; a file that is missing or has no match is reported, never
// treated as an error.
package fixup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// ErrInvalidRule is returned when a rule cannot be compiled.
var ErrInvalidRule = errors.New("invalid fixup rule")

// Rule is a compiled find-and-replace edit.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string   // inserted literally; "$1" is not expanded
	Files       []string // slash-separated, relative to the root
}

// NewRule compiles pattern case-insensitively with "." matching newlines,
// so patterns can span the markup of several lines.
func NewRule(name, pattern, replacement string, files []string) (*Rule, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidRule)
	}
	re, err := regexp.Compile("(?is)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRule, name, err)
	}
	return &Rule{Name: name, Pattern: re, Replacement: replacement, Files: files}, nil
}

// Status is the outcome of a rule on one file.
type Status int

const (
	StatusFixed    Status = iota // matches replaced (or would be, in a dry run)
	StatusNotFound               // file read, no match
	StatusSkipped                // file does not exist
	StatusFailed                 // file could not be read or written
)

func (s Status) String() string {
	switch s {
	case StatusFixed:
		return "fixed"
	case StatusNotFound:
		return "not found"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result reports what a rule did to one file.
type Result struct {
	File   string // as listed in the rule
	Status Status
	Count  int   // matches replaced
	Err    error // set when Status is StatusFailed
}

// Apply runs rule over its files under root. In a dry run matches are
// counted but nothing is written. The returned error is non-nil only when
// ctx is cancelled; per-file problems are reported in the results.
func Apply(ctx context.Context, rule *Rule, root string, dryRun bool) ([]Result, error) {
	results := make([]Result, 0, len(rule.Files))
	for _, file := range rule.Files {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, applyFile(rule, root, file, dryRun))
	}
	return results, nil
}

func applyFile(rule *Rule, root, file string, dryRun bool) Result {
	path := filepath.Join(root, filepath.FromSlash(file))

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{File: file, Status: StatusSkipped}
		}
		return Result{File: file, Status: StatusFailed, Err: err}
	}

	content, err := os.ReadFile(path) // #nosec G304 -- listed by the user
	if err != nil {
		return Result{File: file, Status: StatusFailed, Err: err}
	}

	text := string(content)
	count := len(rule.Pattern.FindAllStringIndex(text, -1))
	if count == 0 {
		return Result{File: file, Status: StatusNotFound}
	}
	if !dryRun {
		fixed := rule.Pattern.ReplaceAllLiteralString(text, rule.Replacement)
		if err := os.WriteFile(path, []byte(fixed), info.Mode().Perm()); err != nil {
			return Result{File: file, Status: StatusFailed, Err: err}
		}
	}
	return Result{File: file, Status: StatusFixed, Count: count}
}
