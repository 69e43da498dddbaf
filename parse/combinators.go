package parse

import "rink/span"

// Tag recognizes an exact literal prefix, using Span's tri-state Compare
// so that a strict-prefix match correctly reports Incomplete rather than
// Err.
func Tag(literal string) ParseFunc[span.Span] {
	return func(s span.Span) Outcome[span.Span] {
		switch s.Compare(literal) {
		case span.CompareOk:
			rest, prefix := s.TakeSplit(len(literal))
			return Ok(rest, prefix)
		case span.CompareIncomplete:
			return NeedMore[span.Span](len(literal) - s.Length())
		default:
			return Fail[span.Span](NewParseError(KindTag, s))
		}
	}
}

// TagNoCase is Tag with case-insensitive comparison, used for the `0x`/`0X`
// hexadecimal prefix.
func TagNoCase(literal string) ParseFunc[span.Span] {
	return func(s span.Span) Outcome[span.Span] {
		switch s.CompareNoCase(literal) {
		case span.CompareOk:
			rest, prefix := s.TakeSplit(len(literal))
			return Ok(rest, prefix)
		case span.CompareIncomplete:
			return NeedMore[span.Span](len(literal) - s.Length())
		default:
			return Fail[span.Span](NewParseError(KindTag, s))
		}
	}
}

// Alt tries each parser in order against the same input, returning the
// first that does not fail. An Incomplete from any alternative
// short-circuits immediately (it is not "tried again" against a longer
// buffer within this call).
func Alt[T any](parsers ...ParseFunc[T]) ParseFunc[T] {
	return func(s span.Span) Outcome[T] {
		for _, p := range parsers {
			o := p(s)
			if !o.IsErr() {
				return o
			}
		}
		return Fail[T](NewParseError(KindAlt, s))
	}
}

// AltComplete tries each parser in order, treating an Incomplete result
// from any alternative as a non-match (moves on to the next alternative)
// rather than short-circuiting. This is the right semantics at dispatch
// boundaries (number/integer/leaf) where the whole buffer is known to be
// complete, so "needs more bytes" really means "doesn't match".
func AltComplete[T any](parsers ...ParseFunc[T]) ParseFunc[T] {
	return func(s span.Span) Outcome[T] {
		for _, p := range parsers {
			o := p(s)
			if o.IsIncomplete() {
				continue
			}
			if !o.IsErr() {
				return o
			}
		}
		return Fail[T](NewParseError(KindAlt, s))
	}
}

// Preceded runs before, discards its value, then runs after from the
// remainder, returning after's value.
func Preceded[A, B any](before ParseFunc[A], after ParseFunc[B]) ParseFunc[B] {
	return func(s span.Span) Outcome[B] {
		o := before(s)
		if !o.IsOk() {
			return convert[A, B](o)
		}
		return after(o.Remainder())
	}
}

// Terminated runs value, then runs after from the remainder and discards
// after's value, returning value's.
func Terminated[A, B any](value ParseFunc[A], after ParseFunc[B]) ParseFunc[A] {
	return func(s span.Span) Outcome[A] {
		o := value(s)
		if !o.IsOk() {
			return o
		}
		o2 := after(o.Remainder())
		if !o2.IsOk() {
			return convert[B, A](o2)
		}
		return Ok(o2.Remainder(), o.Value())
	}
}

// Map transforms a successful value with f, leaving Err/Incomplete
// untouched.
func Map[A, B any](p ParseFunc[A], f func(A) B) ParseFunc[B] {
	return func(s span.Span) Outcome[B] {
		o := p(s)
		if !o.IsOk() {
			return convert[A, B](o)
		}
		return Ok(o.Remainder(), f(o.Value()))
	}
}

// MapRes transforms a successful value with a fallible f; an error from f
// is reported as a MapRes failure at the span.Span the sub-parser started
// from. This is how numeric literal parsing surfaces radix overflow.
func MapRes[A, B any](p ParseFunc[A], f func(A) (B, error)) ParseFunc[B] {
	return func(s span.Span) Outcome[B] {
		o := p(s)
		if !o.IsOk() {
			return convert[A, B](o)
		}
		v, err := f(o.Value())
		if err != nil {
			return Fail[B](NewParseError(KindMapRes, s))
		}
		return Ok(o.Remainder(), v)
	}
}

// First is `preceded(skip, p)`: every significant token in the grammar is
// parsed with First so the grammar stays whitespace/comment agnostic.
func First[T any](p ParseFunc[T]) ParseFunc[T] {
	return Preceded(Skip, p)
}

// Incomplete replaces an Incomplete result from p with a success that
// consumes all remaining input, returning the original span.Span as the
// value. This is how a streaming-shaped recognizer (line comments) becomes
// eager when the caller knows the buffer is complete.
func Incomplete(p ParseFunc[span.Span]) ParseFunc[span.Span] {
	return func(s span.Span) Outcome[span.Span] {
		o := p(s)
		if !o.IsIncomplete() {
			return o
		}
		rest := s.Slice(s.Length(), s.Length())
		return Ok(rest, s)
	}
}

// SkipMany0 applies p zero or more times, discarding its values. Each
// application must consume at least one byte; stopping because p no
// longer consumes anything is success only at end-of-input. Stopping
// mid-input without consuming is a Many0 error, not a quiet success.
func SkipMany0(p ParseFunc[span.Span]) ParseFunc[span.Span] {
	return func(s span.Span) Outcome[span.Span] {
		cur := s
		for {
			o := p(cur)
			if o.IsIncomplete() {
				return NeedMore[span.Span](o.Needed())
			}
			if o.IsErr() {
				break
			}
			if o.Remainder().Offset == cur.Offset {
				if cur.AtEnd() {
					break
				}
				return Fail[span.Span](NewParseError(KindMany0, cur))
			}
			cur = o.Remainder()
		}
		consumed := s.Slice(0, cur.Offset-s.Offset)
		return Ok(cur, consumed)
	}
}

// TakeUntilAndConsume reads up to and including the first occurrence of
// needle, returning the content before it and a remainder starting right
// after it. Failure to find needle at all is an Error (the buffer is
// assumed complete; there's no "might appear later" case here), matching
// block comments' "failure to close is an error".
func TakeUntilAndConsume(needle string) ParseFunc[span.Span] {
	return func(s span.Span) Outcome[span.Span] {
		idx, ok := s.FindSubstring(needle)
		if !ok {
			return Fail[span.Span](NewParseError(KindTakeUntilAndConsume, s))
		}
		rest := s.Slice(idx+len(needle), s.Length())
		return Ok(rest, s.Slice(0, idx))
	}
}

// TakeUntilEndlineAndConsume reads up to and including a line terminator.
// A trailing \r immediately before the \n is excluded from the returned
// content and folded into the delimiter. Reaching end-of-input without a
// newline is Incomplete.
func TakeUntilEndlineAndConsume(s span.Span) Outcome[span.Span] {
	idx, ok := s.Position(func(r rune) bool { return r == '\n' })
	if !ok {
		return NeedMore[span.Span](1)
	}
	end := idx
	if end > 0 && s.Fragment[end-1] == '\r' {
		end--
	}
	value := s.Slice(0, end)
	rest := s.Slice(idx+1, s.Length())
	return Ok(rest, value)
}
