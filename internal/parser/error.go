package parser

import (
	"fmt"
	"strings"
)

// ParseError describes the deepest point reached by a failed parse together
// with the set of tokens that would have allowed it to continue and the
// named rules that were active there.
type ParseError struct {
	Name     string
	Offset   int
	Line     int
	Column   int
	Expected []string
	Trace    []string

	lineText string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: expected %s", e.Name, e.Line, e.Column, e.FormattedExpected())
}

// FormattedExpected joins the expected alternatives, already sorted, with
// ", " and an " or " before the last one.
func (e *ParseError) FormattedExpected() string {
	switch len(e.Expected) {
	case 0:
		return "nothing"
	case 1:
		return e.Expected[0]
	}
	n := len(e.Expected)
	return strings.Join(e.Expected[:n-1], ", ") + " or " + e.Expected[n-1]
}

// FormattedLine renders the failing source line with a caret under the
// offending column.
func (e *ParseError) FormattedLine() string {
	pad := e.Column - 1
	if pad < 0 {
		pad = 0
	}
	return e.lineText + "\n" + strings.Repeat(" ", pad) + "^"
}

// LineText returns the source line containing the failure.
func (e *ParseError) LineText() string { return e.lineText }

// FormattedTrace renders the rule stack captured at the failure, outermost
// first.
func (e *ParseError) FormattedTrace() string {
	return strings.Join(e.Trace, " > ")
}
