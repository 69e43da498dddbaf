package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rink/ast"
	"rink/span"
)

func TestStringBasic(t *testing.T) {
	o := String(span.New(`"hello"`))
	require.True(t, o.IsOk())
	lit := o.Value().(ast.StringLiteral)
	require.Equal(t, "hello", lit.Token.Value)
	require.Equal(t, `"hello"`, lit.Token.Span.Fragment)
}

func TestStringEmpty(t *testing.T) {
	o := String(span.New(`""`))
	require.True(t, o.IsOk())
	lit := o.Value().(ast.StringLiteral)
	require.Equal(t, "", lit.Token.Value)
}

func TestStringEscapedQuote(t *testing.T) {
	o := String(span.New(`"foo\"bar"`))
	require.True(t, o.IsOk())
	lit := o.Value().(ast.StringLiteral)
	require.Equal(t, `foo"bar`, lit.Token.Value)
}

func TestStringEscapeDoesNotInterpretNewline(t *testing.T) {
	o := String(span.New(`"a\nb"`))
	require.True(t, o.IsOk())
	lit := o.Value().(ast.StringLiteral)
	require.Equal(t, "anb", lit.Token.Value)
}

func TestStringEscapedBackslash(t *testing.T) {
	o := String(span.New(`"a\\b"`))
	require.True(t, o.IsOk())
	lit := o.Value().(ast.StringLiteral)
	require.Equal(t, `a\b`, lit.Token.Value)
}

func TestStringUnterminatedIsIncomplete(t *testing.T) {
	o := String(span.New(`"unterminated`))
	require.True(t, o.IsIncomplete())
}

func TestStringEmptyInputIsIncomplete(t *testing.T) {
	o := String(span.New(""))
	require.True(t, o.IsIncomplete())
	require.Equal(t, 2, o.Needed())
}

func TestStringInvalidOpeningCharacter(t *testing.T) {
	o := String(span.New(`no-quote`))
	require.True(t, o.IsErr())
	require.Equal(t, KindStringInvalidOpeningCharacter, o.Err().Kind)
}

func TestStringLeavesRemainder(t *testing.T) {
	o := String(span.New(`"foo" + 1`))
	require.True(t, o.IsOk())
	require.Equal(t, " + 1", o.Remainder().Fragment)
}
