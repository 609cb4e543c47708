// Package token splits Latin-script text into lowercase word tokens.
package token

import (
	"strings"
	"unicode"
)

// Split breaks s on whitespace, strips surrounding punctuation and symbols
// from each field, lowercases, and drops anything left empty. Order is
// preserved; downstream pattern matching relies on it.
// Deterministic and side-effect free
func Split(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if w == "" {
			continue
		}
		out = append(out, strings.ToLower(w))
	}
	return out
}

// HasLatin reports whether tok contains at least one Latin-script letter.
// Used to recover classifiable tokens out of otherwise unsupported input
func HasLatin(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) && unicode.In(r, unicode.Latin) {
			return true
		}
	}
	return false
}
