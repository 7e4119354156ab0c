// Package textutils provides text cleaning utilities for statement cells.
package textutils

import (
	"regexp"
	"strings"
)

// whitespaceRe matches any run of whitespace, including newlines carried over
// from multi-line table cells.
var whitespaceRe = regexp.MustCompile(`[\s\n\r]+`)

// CleanText collapses every run of whitespace into a single space and trims
// the result. Empty input yields an empty string. The function is idempotent.
func CleanText(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(raw, " "))
}

// StripTokens removes each of the given substrings from text and cleans the
// remainder. Tokens are removed literally, not as patterns.
func StripTokens(text string, tokens []string) string {
	for _, token := range tokens {
		text = strings.ReplaceAll(text, token, "")
	}
	return CleanText(text)
}
