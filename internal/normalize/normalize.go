package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Code canonicalizes a team code or placeholder typed by a user:
// surrounding whitespace and diacritics are stripped and plain letters
// are uppercased, so "can", " CAN " and "Cán" all become "CAN".
// Parentheses are kept, "w(57)" becomes "W(57)".
func Code(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, s)
	if err != nil {
		normalized = s
	}
	return strings.ToUpper(strings.TrimSpace(normalized))
}

// Name canonicalizes a team name for lookups: trimmed, diacritics
// stripped and lowercased.
func Name(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, s)
	if err != nil {
		normalized = s
	}
	return strings.ToLower(strings.TrimSpace(normalized))
}
