package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormattedExpectedJoins(t *testing.T) {
	assert.Equal(t, "nothing", (&ParseError{}).FormattedExpected())
	assert.Equal(t, "Id", (&ParseError{Expected: []string{"Id"}}).FormattedExpected())
	assert.Equal(t, "Id or }", (&ParseError{Expected: []string{"Id", "}"}}).FormattedExpected())
	assert.Equal(t, "Id, val or }",
		(&ParseError{Expected: []string{"Id", "val", "}"}}).FormattedExpected())
}

func TestExpectedSetIsSorted(t *testing.T) {
	err := Parse("test.scala", "class C {")
	require.NotNil(t, err)
	sorted := append([]string(nil), err.Expected...)
	assert.IsIncreasing(t, sorted)
}

func TestFormattedLineCaret(t *testing.T) {
	err := Parse("test.scala", "val = 1")
	require.NotNil(t, err)
	lines := strings.Split(err.FormattedLine(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "val = 1", lines[0])
	assert.Equal(t, "    ^", lines[1], "Caret sits under the failing column")
}

func TestErrorStringMentionsPosition(t *testing.T) {
	err := Parse("broken.scala", "val = 1")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "broken.scala:1:5")
	assert.Contains(t, err.Error(), "expected ")
}

func TestTraceListsEnclosingRules(t *testing.T) {
	err := Parse("test.scala", "class C {")
	require.NotNil(t, err)
	require.NotEmpty(t, err.Trace)
	assert.Equal(t, "CompilationUnit", err.Trace[0], "Outermost rule comes first")
	assert.Contains(t, err.FormattedTrace(), "TmplBody")
}

func TestInputLineOf(t *testing.T) {
	in := NewInput("test", "first\nsecond\nthird")
	text, line, column := in.LineOf(8)
	assert.Equal(t, "second", text)
	assert.Equal(t, 2, line)
	assert.Equal(t, 3, column)

	text, line, column = in.LineOf(0)
	assert.Equal(t, "first", text)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, column)
}
