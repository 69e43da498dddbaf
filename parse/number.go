package parse

import (
	"strconv"

	"rink/ast"
	"rink/span"
	"rink/token"
)

func isBinaryDigitByte(c byte) bool { return c == '0' || c == '1' }
func isOctalDigitByte(c byte) bool  { return c >= '0' && c <= '7' }
func isHexDigitByte(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
func isDecimalDigitByte(c byte) bool { return c >= '0' && c <= '9' }

// digitRun recognizes a nonempty run of bytes satisfying isDigit.
func digitRun(isDigit func(byte) bool, kind ErrorKind) ParseFunc[span.Span] {
	return func(s span.Span) Outcome[span.Span] {
		end := 0
		for end < len(s.Fragment) && isDigit(s.Fragment[end]) {
			end++
		}
		if end == 0 {
			return Fail[span.Span](NewParseError(kind, s))
		}
		rest, prefix := s.TakeSplit(end)
		return Ok(rest, prefix)
	}
}

// decimalDigits recognizes either a single digit (including a bare "0"),
// or two-or-more digits whose first is not "0"; a leading zero with more
// than one digit forbids the decimal path, routing to octal instead.
func decimalDigits(s span.Span) Outcome[span.Span] {
	end := 0
	for end < len(s.Fragment) && isDecimalDigitByte(s.Fragment[end]) {
		end++
	}
	if end == 0 {
		return Fail[span.Span](NewParseError(KindDigit, s))
	}
	if end > 1 && s.Fragment[0] == '0' {
		return Fail[span.Span](NewParseError(KindDigit, s))
	}
	rest, prefix := s.TakeSplit(end)
	return Ok(rest, prefix)
}

func integerMapper(radix int) func(span.Span) (ast.Literal, error) {
	return func(digits span.Span) (ast.Literal, error) {
		v, err := strconv.ParseInt(digits.Fragment, radix, 64)
		if err != nil {
			return nil, err
		}
		return ast.IntegerLiteral{Token: ast.Token[int64]{Value: v, Span: digits}}, nil
	}
}

// BinaryInteger recognizes "0b" followed by a nonempty run of {0,1},
// parsed as base 2. Overflow is a MapRes error. The literal's Span covers
// only the digit run, not the "0b" prefix, because Preceded discards the
// prefix's own match.
var BinaryInteger ParseFunc[ast.Literal] = MapRes(
	Preceded(Tag("0b"), digitRun(isBinaryDigitByte, KindBinaryDigit)),
	integerMapper(2),
)

// HexInteger recognizes "0x"/"0X" followed by nonempty case-insensitive
// hex digits, parsed as base 16.
var HexInteger ParseFunc[ast.Literal] = MapRes(
	Preceded(TagNoCase("0x"), digitRun(isHexDigitByte, KindHexDigit)),
	integerMapper(16),
)

// OctalInteger recognizes a leading "0" followed by nonempty octal
// digits, parsed as base 8. A bare "0" does not reach here: it is claimed
// by the decimal path first in the integer dispatch order.
var OctalInteger ParseFunc[ast.Literal] = MapRes(
	Preceded(Tag("0"), digitRun(isOctalDigitByte, KindOctDigit)),
	integerMapper(8),
)

func decimalMapper(digits span.Span) (ast.Literal, error) {
	if v, err := strconv.ParseInt(digits.Fragment, 10, 64); err == nil {
		return ast.IntegerLiteral{Token: ast.Token[int64]{Value: v, Span: digits}}, nil
	}
	f, err := strconv.ParseFloat(digits.Fragment, 64)
	if err != nil && !isRangeError(err) {
		return nil, err
	}
	return ast.RealLiteral{Token: ast.Token[float64]{Value: f, Span: digits}}, nil
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

// DecimalInteger recognizes a single digit, or 2+ digits not starting
// with "0". It tries int64 first; on overflow it falls back to float64
// parsed from the same raw digit string, producing a Real literal that
// keeps the decimal's original span. Promotion goes all the way to
// +Inf for magnitudes beyond float64's range, which
// strconv.ParseFloat reports as a range error while still returning the
// correctly-saturated value.
var DecimalInteger ParseFunc[ast.Literal] = MapRes(decimalDigits, decimalMapper)

// Integer dispatches across the four admitted radices, in the fixed order
// binary, hexadecimal, decimal, octal, with complete (non-backtracking)
// semantics at this boundary.
var Integer ParseFunc[ast.Literal] = AltComplete(BinaryInteger, HexInteger, DecimalInteger, OctalInteger)

func decimalDigitsSpanLen(f string) int {
	i := 0
	for i < len(f) && isDecimalDigitByte(f[i]) {
		i++
	}
	return i
}

func exponentSpanLen(f string) int {
	if len(f) == 0 || (f[0] != 'e' && f[0] != 'E') {
		return 0
	}
	i := 1
	if i < len(f) && (f[i] == '+' || f[i] == '-') {
		i++
	}
	digitsStart := i
	i += decimalDigitsSpanLen(f[i:])
	if i == digitsStart {
		return 0
	}
	return i
}

// realFormDigitsDotDigitsExponent matches `digits? '.' digits exponent?`.
func realFormDigitsDotDigitsExponent(f string) (int, bool) {
	i := decimalDigitsSpanLen(f)
	if i >= len(f) || f[i] != '.' {
		return 0, false
	}
	i++
	fracStart := i
	i += decimalDigitsSpanLen(f[i:])
	if i == fracStart {
		return 0, false
	}
	i += exponentSpanLen(f[i:])
	return i, true
}

// realFormDigitsDotExponent matches `digits '.' exponent?`.
func realFormDigitsDotExponent(f string) (int, bool) {
	i := decimalDigitsSpanLen(f)
	if i == 0 || i >= len(f) || f[i] != '.' {
		return 0, false
	}
	i++
	i += exponentSpanLen(f[i:])
	return i, true
}

// realFormDigitsExponent matches `digits exponent`.
func realFormDigitsExponent(f string) (int, bool) {
	i := decimalDigitsSpanLen(f)
	if i == 0 {
		return 0, false
	}
	expLen := exponentSpanLen(f[i:])
	if expLen == 0 {
		return 0, false
	}
	return i + expLen, true
}

// Real recognizes the floating-point grammar and parses it with IEEE-754
// double semantics; magnitudes past float64's range are a valid Real
// (+Inf; the grammar admits no sign), matching the overflow-to-Infinity behavior of decimal
// promotion.
func Real(s span.Span) Outcome[ast.Literal] {
	f := s.Fragment
	length, ok := realFormDigitsDotDigitsExponent(f)
	if !ok {
		length, ok = realFormDigitsDotExponent(f)
	}
	if !ok {
		length, ok = realFormDigitsExponent(f)
	}
	if !ok {
		return Fail[ast.Literal](NewParseError(KindDigit, s))
	}
	matched := s.Slice(0, length)
	value, err := strconv.ParseFloat(matched.Fragment, 64)
	if err != nil && !isRangeError(err) {
		return Fail[ast.Literal](NewParseError(KindMapRes, s))
	}
	rest := s.Slice(length, s.Length())
	return Ok(rest, ast.Literal(ast.RealLiteral{Token: ast.Token[float64]{Value: value, Span: matched}}))
}

// Boolean recognizes exactly "true" or "false".
func Boolean(s span.Span) Outcome[ast.Literal] {
	o := AltComplete(Tag(token.TRUE), Tag(token.FALSE))(s)
	if !o.IsOk() {
		return convert[span.Span, ast.Literal](o)
	}
	matched := o.Value()
	value := matched.Fragment == token.TRUE
	return Ok(o.Remainder(), ast.Literal(ast.BooleanLiteral{Token: ast.Token[bool]{Value: value, Span: matched}}))
}

// Number dispatches boolean | real | integer, in that order.
var Number ParseFunc[ast.Literal] = AltComplete(Boolean, Real, Integer)
