package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
	"rink/span"
)

func TestVariableEqualityIgnoresSpan(t *testing.T) {
	a := Variable{Name: span.NewAt("x", 0, 1, 1), Scope: Local}
	b := Variable{Name: span.NewAt("x", 40, 5, 9), Scope: Local}
	require.True(t, a.Equal(b))

	c := Variable{Name: span.NewAt("x", 0, 1, 1), Scope: Global}
	require.False(t, a.Equal(c))

	d := Variable{Name: span.NewAt("y", 0, 1, 1), Scope: Local}
	require.False(t, a.Equal(d))
}

func TestExpressionSumDispatch(t *testing.T) {
	var e Expression = IntegerLiteral{Token: Token[int64]{Value: 42, Span: span.New("42")}}
	printer := DebugPrinter{}
	got := e.Accept(printer).(map[string]any)
	require.Equal(t, "Integer", got["kind"])
	require.Equal(t, int64(42), got["value"])
}

func TestOperationTreePrinting(t *testing.T) {
	// 1 + 2 * 3 as Addition(1, Multiplication(2, 3))
	one := Nullary{Expression: IntegerLiteral{Token: Token[int64]{Value: 1, Span: span.New("1")}}}
	two := Nullary{Expression: IntegerLiteral{Token: Token[int64]{Value: 2, Span: span.New("2")}}}
	three := Nullary{Expression: IntegerLiteral{Token: Token[int64]{Value: 3, Span: span.New("3")}}}

	mul := Binary{Operator: Multiplication, LeftOperand: two, RightOperand: three}
	add := Binary{Operator: Addition, LeftOperand: one, RightOperand: mul}

	expr := Operation{Value: add}
	printer := DebugPrinter{}
	got := expr.Accept(printer).(map[string]any)

	require.Equal(t, "Binary", got["kind"])
	require.Equal(t, "Addition", got["operator"])
	right := got["right"].(map[string]any)
	require.Equal(t, "Multiplication", right["operator"])
}

func TestDeclarationStatementPrinting(t *testing.T) {
	y := Variable{Name: span.New("y"), Scope: Local}
	expr := IntegerLiteral{Token: Token[int64]{Value: 7, Span: span.New("7")}}
	decl := Declaration{Variable: y, Expression: expr}

	printer := DebugPrinter{}
	got := decl.Accept(printer).(map[string]any)
	require.Equal(t, "Declaration", got["kind"])
	variable := got["variable"].(map[string]any)
	require.Equal(t, "y", variable["name"])
}
