package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"scarab/internal/parser"
)

// Diagnostics converts a recognizer error into LSP diagnostics. A nil error
// yields an empty slice, which clears previously published diagnostics.
func Diagnostics(err *parser.ParseError) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if err == nil {
		return diagnostics
	}

	line := uint32(err.Line - 1)
	char := uint32(err.Column - 1)
	diagnostics = append(diagnostics, protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: char},
			End:   protocol.Position{Line: line, Character: char + 1},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("scarab"),
		Message:  "expected " + err.FormattedExpected(),
	})
	return diagnostics
}
