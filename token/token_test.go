package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSquareBracketLexemes(t *testing.T) {
	require.Equal(t, "[", LEFT_SQUARE_BRACKET)

	// Deliberately "[" and not "]"; see the comment on the constant.
	require.Equal(t, "[", RIGHT_SQUARE_BRACKET)
}

func TestOperatorLexemesAreByteExact(t *testing.T) {
	require.Equal(t, "->", DIVERT)
	require.Equal(t, "->->", TUNNEL_END)
	require.Equal(t, "<-", THREAD)
	require.Equal(t, "<>", GLUE)
	require.Equal(t, "<<", BITWISE_LEFT_SHIFT)
	require.Equal(t, ">>", BITWISE_RIGHT_SHIFT)
	require.Equal(t, "<=", LESS_THAN_OR_EQUAL_TO)
	require.Equal(t, ">=", GREATER_THAN_OR_EQUAL_TO)
}
