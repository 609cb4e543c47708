package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize removes bytes/runes we never want stored or matched:
// - NUL and other ASCII controls except '\n', '\r', '\t'
// - DEL (0x7F)
// - C1 controls U+0080..U+009F
// - invalid UTF-8 bytes
// Returns s unchanged when nothing needs cleaning
func Sanitize(s string) string {
	if s == "" {
		return s
	}

	clean := func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return r
		case r < 0x20 || r == 0x7F:
			return -1
		case r >= 0x80 && r <= 0x9F:
			return -1
		}
		return r
	}

	// fast path, scan for the first offending rune
	bad := strings.IndexFunc(s, func(r rune) bool { return clean(r) == -1 })
	if bad < 0 && utf8.ValidString(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			i++ // invalid byte, drop
			continue
		}
		if clean(r) != -1 {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}
