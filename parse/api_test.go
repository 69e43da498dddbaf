package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rink/ast"
)

func TestParseExpressionSkipsLeadingTrivia(t *testing.T) {
	result, err := ParseExpression("  /* note */ 1 + 2")
	require.NoError(t, err)
	op := result.Value.(ast.Operation).Value
	add := asBinary(t, op)
	require.Equal(t, ast.Addition, add.Operator)
}

func TestParseStatementReturnsDeclaration(t *testing.T) {
	result, err := ParseStatement("~ total = 1 + 2")
	require.NoError(t, err)
	_, ok := result.Value.(ast.Declaration)
	require.True(t, ok)
}

func TestParseLiteralReturnsInteger(t *testing.T) {
	result, err := ParseLiteral("0b101010")
	require.NoError(t, err)
	lit, ok := result.Value.(ast.IntegerLiteral)
	require.True(t, ok)
	require.Equal(t, int64(42), lit.Token.Value)
}

func TestParseLiteralLeavesRemainder(t *testing.T) {
	result, err := ParseLiteral(`42 rest`)
	require.NoError(t, err)
	require.Equal(t, " rest", result.Remainder.Fragment)
}

func TestParseLiteralUnterminatedStringIsComplete(t *testing.T) {
	_, err := ParseLiteral(`"unterminated`)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, KindComplete, pe.Kind)
}

func TestParseExpressionInvalidInputIsError(t *testing.T) {
	_, err := ParseExpression("+ + +")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}
