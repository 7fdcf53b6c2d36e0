package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const DefaultTextLimit = 500

// SanitizeText strips control characters, collapses runs of whitespace and
// caps the result at limit runes.
func SanitizeText(s string, limit int) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if r == utf8.RuneError {
			continue
		}
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if unicode.IsControl(r) || r == '\u200b' || r == '\ufeff' {
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	out := b.String()
	if limit > 0 && utf8.RuneCountInString(out) > limit {
		out = string([]rune(out)[:limit])
	}
	return out
}

// SanitizeList sanitizes every entry and drops the empty ones.
func SanitizeList(items []string, limit int) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := SanitizeText(it, limit); s != "" {
			out = append(out, s)
		}
	}
	return out
}
