package runner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheckFileVerdicts(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	r := &Runner{Out: os.Stdout}

	good := writeFile(t, dir, "good.scala", "class C")
	bad := writeFile(t, dir, "bad.scala", "class C {")

	assert.Equal(t, Pass, r.CheckFile(good).Status)

	res := r.CheckFile(bad)
	assert.Equal(t, Fail, res.Status)
	require.NotNil(t, res.Err)
	assert.Contains(t, res.Err.Expected, "}")
}

func TestNegSegmentInvertsOutcome(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	r := &Runner{Out: os.Stdout}

	broken := writeFile(t, dir, "neg/broken.scala", "class C {")
	fine := writeFile(t, dir, "neg/fine.scala", "class C")

	assert.Equal(t, Pass, r.CheckFile(broken).Status,
		"A failing file under neg counts as a pass")
	assert.Equal(t, Fail, r.CheckFile(fine).Status,
		"A parsing file under neg counts as a failure")
}

func TestSkipConditions(t *testing.T) {
	assert.True(t, ShouldSkip("a.scala", "#!/usr/bin/env scala\nclass C"))
	assert.True(t, ShouldSkip("a.scala", "class C\n"+`val u = \u0041`+"\n"),
		"A raw unicode escape outside quotes forces a skip")
	assert.True(t, ShouldSkip("x/failing/a.scala", "class C"))
	assert.False(t, ShouldSkip("x/ok/a.scala", "class C"))
	assert.False(t, ShouldSkip("a.scala", `val s = "\u0041"`),
		"Escapes inside string literals are fine")
}

func TestMissingFileIsSkipped(t *testing.T) {
	r := &Runner{Out: os.Stdout}
	assert.Equal(t, Skip, r.CheckFile("does/not/exist.scala").Status)
}

func TestRunReportsLines(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	writeFile(t, dir, "good.scala", "class C")
	writeFile(t, dir, "bad.scala", "class C {")
	writeFile(t, dir, "notes.txt", "not a source file")

	var out strings.Builder
	r := &Runner{Out: &out}
	ok, err := r.Run([]string{dir})
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Contains(t, out.String(), "[9] "+filepath.Join(dir, "bad.scala")+"  failed")
	assert.Contains(t, out.String(), "[7] "+filepath.Join(dir, "good.scala")+"  ok")
	assert.NotContains(t, out.String(), "notes.txt")
	assert.Contains(t, out.String(), "error: expected")
	assert.Contains(t, out.String(), "┌─")
}

func TestRunAllPassing(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	writeFile(t, dir, "a.scala", "package a\nclass A")
	writeFile(t, dir, "sub/b.scala", "object B { def f = 1 }")

	var out strings.Builder
	r := &Runner{Out: &out}
	ok, err := r.Run([]string{dir})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotContains(t, out.String(), "failed")
}
