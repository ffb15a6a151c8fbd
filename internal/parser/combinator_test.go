package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchStrAdvancesOnMatch(t *testing.T) {
	p := newParser("test", "class C")
	assert.True(t, p.matchStr("class"))
	assert.Equal(t, 5, p.pos)
}

func TestMatchStrReportsFirstMismatch(t *testing.T) {
	p := newParser("test", "clazz")
	assert.False(t, p.matchStr("class"))
	assert.Equal(t, 0, p.pos, "Cursor must not move on failure")
	assert.Equal(t, 3, p.frontier, "Frontier sits at the first mismatching offset")
}

func TestOrderedChoiceIsNeutral(t *testing.T) {
	// (a / a) behaves exactly like a, including the failure position
	for _, source := range []string{"while (x)", "whale"} {
		single := newParser("test", source)
		okSingle := single.kw("while")

		double := newParser("test", source)
		okDouble := double.kw("while") || double.kw("while")

		assert.Equal(t, okSingle, okDouble, source)
		assert.Equal(t, single.pos, double.pos, source)
		assert.Equal(t, single.frontier, double.frontier, source)
	}
}

func TestOptNeverFails(t *testing.T) {
	p := newParser("test", "xyz")
	assert.True(t, p.opt(func() bool { return p.matchStr("abc") }))
	assert.Equal(t, 0, p.pos)
	assert.True(t, p.opt(func() bool { return p.matchStr("xy") }))
	assert.Equal(t, 2, p.pos, "opt commits the cursor only when its body advances")
}

func TestRep0StopsOnFirstFailure(t *testing.T) {
	p := newParser("test", "aaab")
	assert.True(t, p.rep0(func() bool { return p.matchStr("a") }))
	assert.Equal(t, 3, p.pos)
}

func TestRep0StopsWhenNotAdvancing(t *testing.T) {
	p := newParser("test", "aaa")
	calls := 0
	assert.True(t, p.rep0(func() bool {
		calls++
		return true
	}))
	assert.Equal(t, 1, calls, "A zero-width success must not loop")
}

func TestRep1RequiresOne(t *testing.T) {
	p := newParser("test", "b")
	assert.False(t, p.rep1(func() bool { return p.matchStr("a") }))
	assert.Equal(t, 0, p.pos)
}

func TestRepSepLeavesTrailingSeparator(t *testing.T) {
	p := newParser("test", "a,a,")
	assert.True(t, p.repSep(
		func() bool { return p.matchStr("a") },
		func() bool { return p.matchStr(",") },
	))
	assert.Equal(t, 3, p.pos, "The dangling separator stays unconsumed")
}

func TestPeekRestoresCursorButKeepsFrontier(t *testing.T) {
	p := newParser("test", "abc")
	assert.True(t, p.peek(func() bool { return p.matchStr("ab") }))
	assert.Equal(t, 0, p.pos)

	assert.False(t, p.peek(func() bool { return p.matchStr("ax") }))
	assert.Equal(t, 0, p.pos)
	assert.Equal(t, 1, p.frontier, "Positive lookahead keeps frontier updates")
}

func TestNotRecordsNothing(t *testing.T) {
	p := newParser("test", "abc")
	assert.True(t, p.not(func() bool { return p.matchStr("xy") }))
	assert.Equal(t, 0, p.pos)
	assert.Equal(t, 0, p.frontier)
	assert.Empty(t, p.expected)

	assert.False(t, p.not(func() bool { return p.matchStr("ab") }))
	assert.Equal(t, 0, p.pos)
}

func TestAtomMasksInternalFailures(t *testing.T) {
	p := newParser("test", "whale")
	assert.False(t, p.kw("while"))
	require.Contains(t, p.expected, "while")
	assert.NotContains(t, p.expected, "whal", "Internal alternatives stay hidden")
}

func TestFrontierTiesMergeExpectedSets(t *testing.T) {
	p := newParser("test", "x")
	p.kw("while")
	p.kw("val")
	assert.Contains(t, p.expected, "while")
	assert.Contains(t, p.expected, "val")
	assert.Equal(t, 0, p.frontier)
}

func TestDeeperFailureReplacesExpectedSet(t *testing.T) {
	p := newParser("test", "val x")
	p.kw("var")
	require.Contains(t, p.expected, "var")

	// a deeper failure resets the set
	assert.True(t, p.kw("val"))
	p.kw("while")
	assert.NotContains(t, p.expected, "var")
	assert.Contains(t, p.expected, "while")
	assert.Greater(t, p.frontier, 0)
}

func TestCaptureReturnsConsumedText(t *testing.T) {
	p := newParser("test", "hello world")
	text, ok := p.capture(func() bool { return p.matchStr("hello") })
	require.True(t, ok)
	assert.Equal(t, "hello", text)

	_, ok = p.capture(func() bool { return p.matchStr("nope") })
	assert.False(t, ok)
}

func TestKeywordBoundary(t *testing.T) {
	p := newParser("test", "classX")
	assert.False(t, p.kw("class"), "A keyword must not match an identifier prefix")
	assert.Equal(t, 0, p.pos)

	p = newParser("test", "class X")
	assert.True(t, p.kw("class"))
}

func TestOperatorTokenBoundary(t *testing.T) {
	p := newParser("test", "== 1")
	assert.False(t, p.opTok("="), "\"=\" must not match the head of \"==\"")
	assert.Equal(t, 0, p.pos)

	p = newParser("test", "= 1")
	assert.True(t, p.opTok("="))
}

func TestSemiMatchesNewlineRuns(t *testing.T) {
	p := newParser("test", "\n\n\nx")
	assert.True(t, p.semi())
	assert.Equal(t, 3, p.pos, "Consecutive newlines collapse into one Semi")

	p = newParser("test", "  ; x")
	assert.True(t, p.semi())

	p = newParser("test", "  x")
	assert.False(t, p.semi())
	assert.Equal(t, 0, p.pos)
}

func TestNestedBlockComments(t *testing.T) {
	p := newParser("test", "/* a /* b */ c */x")
	assert.True(t, p.comment())
	assert.Equal(t, 'x', p.cur())
}

func TestWsNeverCrossesBareNewline(t *testing.T) {
	p := newParser("test", "  \t// comment\nnext")
	p.ws()
	assert.Equal(t, '\n', p.cur(), "WS stops at the newline")

	p = newParser("test", "  \t// comment\nnext")
	p.wl()
	assert.Equal(t, 'n', p.cur(), "WL crosses it")
}

func TestOneNLMaxAllowsSingleNewline(t *testing.T) {
	p := newParser("test", " \n rest")
	assert.True(t, p.oneNLMax())

	p = newParser("test", " \n\n rest")
	assert.False(t, p.oneNLMax())
	assert.Equal(t, 0, p.pos)

	p = newParser("test", " \n // note\n rest")
	assert.True(t, p.oneNLMax(), "A comment-only line is not a second newline")
}

func TestIdentifierShapes(t *testing.T) {
	for _, src := range []string{"plain", "Upper", "x1", "a_b", "x_+", "::", "`while`", "$dollar"} {
		p := newParser("test", src)
		assert.True(t, p.id(), src)
		assert.True(t, p.eof(), src)
	}
	for _, src := range []string{"while", "=", "=>", "_", "`", "123"} {
		p := newParser("test", src)
		assert.False(t, p.id(), src)
		assert.Equal(t, 0, p.pos, src)
	}
}

func TestVarIdRequiresLowercase(t *testing.T) {
	p := newParser("test", "name")
	assert.True(t, p.varId())

	p = newParser("test", "Name")
	assert.False(t, p.varId())

	p = newParser("test", "_x")
	assert.False(t, p.varId())
}
