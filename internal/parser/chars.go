package parser

import (
	"strings"
	"unicode"
)

const asciiOpChars = `!#$%&*+-/:<=>?@\^|~`

func isWSChar(r rune) bool { return r == ' ' || r == '\t' }

func isNewlineStart(r rune) bool { return r == '\n' || r == '\r' }

func isLetterChar(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isDigitChar(r rune) bool { return r >= '0' && r <= '9' }

func isIdentChar(r rune) bool { return isLetterChar(r) || isDigitChar(r) }

func isHexDigitChar(r rune) bool {
	return isDigitChar(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// isOpChar reports whether r can appear in an operator identifier: the
// printable ASCII operator symbols plus the Unicode math and other-symbol
// categories.
func isOpChar(r rune) bool {
	if r < 0 {
		return false
	}
	if r < 128 {
		return strings.ContainsRune(asciiOpChars, r)
	}
	return unicode.In(r, unicode.Sm, unicode.So)
}
