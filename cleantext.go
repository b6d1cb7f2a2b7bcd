package wordfields

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// endOfRowMark is the non-printable character Word uses for end-of-cell and
// end-of-row marks in its text representation.
const endOfRowMark = "\u0007"

var textCleaner = transform.Chain(
	// HTML-sourced content (notably HTML email) exposes paragraph
	// separators as vertical tabs.
	runes.Map(func(r rune) rune {
		if r == '\v' {
			return '\r'
		}
		return r
	}),
	// End-of-row marks are structural artifacts, not content.
	runes.Remove(runes.Predicate(func(r rune) bool { return r == '\a' })),
)

// CleanText applies the unconditional, idempotent character substitutions
// required on raw Word range text: vertical tabs become carriage returns
// and end-of-row marks are stripped.
func CleanText(s string) string {
	out, _, err := transform.String(textCleaner, s)
	if err != nil {
		return s
	}
	return out
}
