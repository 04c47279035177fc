package scan

import "strings"

// trimCutset covers surrounding whitespace plus single/double quote wrapping.
const trimCutset = " '\"\n\r\t"

// Trim strips surrounding whitespace and quote characters from a token.
func Trim(s string) string {
	return strings.Trim(s, trimCutset)
}

// Fields splits a comma-delimited data row into trimmed tokens.
// Every token is passed through Trim, so quoted values come back bare.
func Fields(line string) []string {
	parts := strings.Split(line, ",")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = Trim(p)
	}
	return tokens
}
