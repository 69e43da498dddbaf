package parse

import (
	"unicode"
	"unicode/utf8"

	"rink/span"
)

func isIdentifierRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ParseIdentifier recognizes a nonempty run of identifier runes whose
// first rune is not a digit. Every caller hands in a complete buffer up
// front, so there is no "maybe more identifier runes are coming"
// ambiguity at the end of the fragment: running off the end while still
// matching identifier runes is the success case, never Incomplete.
func ParseIdentifier(s span.Span) Outcome[span.Span] {
	if s.Length() == 0 {
		return Fail[span.Span](NewParseError(KindIdentifier, s))
	}
	end := s.Length()
	if pos, ok := s.Position(func(r rune) bool { return !isIdentifierRune(r) }); ok {
		end = pos
	}
	if end == 0 {
		return Fail[span.Span](NewParseError(KindIdentifier, s))
	}
	firstRune, _ := utf8.DecodeRuneInString(s.Fragment)
	if unicode.IsDigit(firstRune) {
		return Fail[span.Span](NewParseError(KindIdentifier, s))
	}
	rest, prefix := s.TakeSplit(end)
	return Ok(rest, prefix)
}
