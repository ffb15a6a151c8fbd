// Package runner drives the recognizer over trees of Scala sources and
// tallies the verdicts. The core parser knows nothing about files; all
// discovery, skipping and reporting policy lives here.
package runner

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fatih/color"

	"scarab/internal/parser"
)

// Status classifies the outcome of checking one file.
type Status int

const (
	Pass Status = iota
	Fail
	Skip
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "ok"
	case Fail:
		return "failed"
	default:
		return "skip"
	}
}

// Result is the verdict for a single source file.
type Result struct {
	Path   string
	Length int
	Status Status
	Err    *parser.ParseError
}

// unicodeEscapeLine marks files carrying raw \uXXXX escapes outside string
// or character literals; the recognizer matches escapes textually and never
// expands them, so such files are skipped rather than misjudged.
var unicodeEscapeLine = regexp.MustCompile(`^[^"']*\\u[0-9]{4}[^"']*$`)

// Runner checks every .scala file under a set of roots.
type Runner struct {
	Out    io.Writer
	Tracer *parser.Tracer
}

// Run walks the roots in order and reports one line per file, with a
// diagnostic block after each failure. It returns true when no file failed.
func (r *Runner) Run(roots []string) (bool, error) {
	allPass := true
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".scala") {
				return nil
			}
			res := r.CheckFile(path)
			r.report(res)
			if res.Status == Fail {
				allPass = false
			}
			return nil
		})
		if err != nil {
			return false, err
		}
	}
	return allPass, nil
}

// CheckFile classifies a single file. A path segment named "neg" inverts
// the expected outcome: a parse failure there counts as a pass. An
// unreadable file is skipped, not failed.
func (r *Runner) CheckFile(path string) Result {
	source, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Status: Skip}
	}
	res := Result{Path: path, Length: len(source)}
	if ShouldSkip(path, string(source)) {
		res.Status = Skip
		return res
	}

	var perr *parser.ParseError
	if r.Tracer != nil {
		perr = parser.ParseTraced(path, string(source), r.Tracer)
	} else {
		perr = parser.Parse(path, string(source))
	}

	failed := perr != nil
	if hasSegment(path, "neg") {
		failed = !failed
	}
	if failed {
		res.Status = Fail
		res.Err = perr
	} else {
		res.Status = Pass
	}
	return res
}

// ShouldSkip reports whether a file is outside the recognizer's remit: a
// script with a shebang line, a file relying on unicode-escape expansion,
// or anything under a "failing" path segment.
func ShouldSkip(path, source string) bool {
	if strings.HasPrefix(source, "#!") {
		return true
	}
	if hasSegment(path, "failing") {
		return true
	}
	for _, line := range strings.Split(source, "\n") {
		if unicodeEscapeLine.MatchString(strings.TrimSuffix(line, "\r")) {
			return true
		}
	}
	return false
}

func hasSegment(path, name string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(path), "/") {
		if seg == name {
			return true
		}
	}
	return false
}

func (r *Runner) report(res Result) {
	verdict := res.Status.String()
	switch res.Status {
	case Pass:
		verdict = color.GreenString(verdict)
	case Fail:
		verdict = color.RedString(verdict)
	case Skip:
		verdict = color.YellowString(verdict)
	}
	fmt.Fprintf(r.Out, "[%d] %s  %s\n", res.Length, res.Path, verdict)
	if res.Status != Fail {
		return
	}
	if res.Err != nil {
		fmt.Fprint(r.Out, FormatDiagnostic(res.Path, res.Err))
	} else {
		fmt.Fprintf(r.Out, "  expected a parse failure, but the file parsed\n\n")
	}
}

// FormatDiagnostic renders a parse error inside a source frame with the
// failing line and a caret under the offending column.
func FormatDiagnostic(path string, err *parser.ParseError) string {
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	width := len(fmt.Sprintf("%d", err.Line))
	if width < 3 {
		width = 3
	}
	indent := strings.Repeat(" ", width)

	marker := strings.Repeat(" ", max(0, err.Column-1)) + "^"

	var b strings.Builder
	fmt.Fprintf(&b, "%s: expected %s\n", red("error"), err.FormattedExpected())
	fmt.Fprintf(&b, "%s%s %s:%d:%d\n", indent, dim("┌─"), path, err.Line, err.Column)
	fmt.Fprintf(&b, "%s%s\n", indent, dim("│"))
	fmt.Fprintf(&b, "%s%s%s\n", bold(fmt.Sprintf("%*d", width, err.Line)), dim("│"), err.LineText())
	fmt.Fprintf(&b, "%s%s%s\n", indent, dim("│"), bold(marker))
	if trace := err.FormattedTrace(); trace != "" {
		fmt.Fprintf(&b, "%s%s %s\n", indent, dim("└─"), dim(trace))
	}
	b.WriteString("\n")
	return b.String()
}
