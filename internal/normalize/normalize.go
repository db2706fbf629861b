// Package normalize cleans free-text spreadsheet fields before they are used
// to build provider queries.
package normalize

import (
	"regexp"
	"strings"
)

var (
	punctuation = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Clean trims the text, replaces punctuation with single spaces and collapses
// runs of whitespace. Accented letters are kept. Clean is idempotent and an
// empty or punctuation-only input yields "".
func Clean(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = punctuation.ReplaceAllString(text, " ")
	text = whitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// FirstAuthor extracts the first author token from a joined author field:
// the text before the first ';' or ',', cleaned. Returns "" when the field
// holds no usable name.
func FirstAuthor(author string) string {
	if i := strings.IndexAny(author, ";,"); i >= 0 {
		author = author[:i]
	}
	return Clean(author)
}
