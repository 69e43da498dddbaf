package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rink/ast"
	"rink/span"
)

func TestLiteralDispatchesNumber(t *testing.T) {
	o := Literal(span.New("42"))
	require.True(t, o.IsOk())
	_, ok := o.Value().(ast.IntegerLiteral)
	require.True(t, ok)
}

func TestLiteralDispatchesString(t *testing.T) {
	o := Literal(span.New(`"hi"`))
	require.True(t, o.IsOk())
	lit, ok := o.Value().(ast.StringLiteral)
	require.True(t, ok)
	require.Equal(t, "hi", lit.Token.Value)
}

func TestLiteralNeitherFails(t *testing.T) {
	o := Literal(span.New("+"))
	require.True(t, o.IsErr())
}
