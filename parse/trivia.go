package parse

import (
	"rink/span"
	"rink/token"
)

// Whitespace recognizes a nonempty run of space, tab, carriage return or
// line feed bytes.
func Whitespace(s span.Span) Outcome[span.Span] {
	end := 0
loop:
	for end < len(s.Fragment) {
		switch s.Fragment[end] {
		case ' ', '\t', '\r', '\n':
			end++
		default:
			break loop
		}
	}
	if end == 0 {
		// Only ever surfaced through Skip's alternation; Tag is the
		// closest-fitting standard kind for "did not match here".
		return Fail[span.Span](NewParseError(KindTag, s))
	}
	rest, prefix := s.TakeSplit(end)
	return Ok(rest, prefix)
}

var blockComment = Preceded(Tag(token.BLOCK_COMMENT_OPEN), TakeUntilAndConsume(token.BLOCK_COMMENT_CLOSE))
var lineComment = Preceded(Tag(token.INLINE_COMMENT), Incomplete(TakeUntilEndlineAndConsume))

// Comment recognizes either a non-nesting block comment (first `*/` wins)
// or a line comment running to end-of-line or end-of-input.
func Comment(s span.Span) Outcome[span.Span] {
	return Alt(blockComment, lineComment)(s)
}

// Skip consumes zero or more alternating comments and whitespace runs. It
// is the trivia-consuming recognizer inserted by First before every
// significant token.
func Skip(s span.Span) Outcome[span.Span] {
	return SkipMany0(Alt(Comment, Whitespace))(s)
}
