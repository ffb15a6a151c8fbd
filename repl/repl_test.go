package repl

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestReplChecksLines(t *testing.T) {
	color.NoColor = true
	in := strings.NewReader("class C\nclass C {\n:quit\n")
	var out strings.Builder

	Start(in, &out)

	assert.Contains(t, out.String(), "ok")
	assert.Contains(t, out.String(), "error: <console>:1:10")
}

func TestReplPasteMode(t *testing.T) {
	color.NoColor = true
	in := strings.NewReader(":paste\nobject O {\n  def f = 1\n}\n:end\n:quit\n")
	var out strings.Builder

	Start(in, &out)

	assert.Contains(t, out.String(), "ok")
	assert.NotContains(t, out.String(), "error:")
}
