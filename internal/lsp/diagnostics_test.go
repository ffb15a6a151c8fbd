package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scarab/internal/parser"
)

func TestDiagnosticsForParseError(t *testing.T) {
	err := parser.Parse("file:///test.scala", "class C {\n  val = 1\n}")
	require.NotNil(t, err)

	diagnostics := Diagnostics(err)
	require.Len(t, diagnostics, 1)

	d := diagnostics[0]
	assert.Equal(t, uint32(1), d.Range.Start.Line, "LSP positions are zero-based")
	assert.Equal(t, uint32(6), d.Range.Start.Character)
	assert.Contains(t, d.Message, "expected ")
	assert.Contains(t, d.Message, "Id")
	require.NotNil(t, d.Source)
	assert.Equal(t, "scarab", *d.Source)
}

func TestDiagnosticsForCleanParse(t *testing.T) {
	diagnostics := Diagnostics(parser.Parse("file:///test.scala", "class C"))
	assert.NotNil(t, diagnostics)
	assert.Empty(t, diagnostics, "A clean parse clears diagnostics")
}
