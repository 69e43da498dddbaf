package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rink/ast"
	"rink/span"
)

func TestLocalDeclarationStatement(t *testing.T) {
	o := Statement(span.New("~ y = 2 * x * y"))
	require.True(t, o.IsOk())
	decl, ok := o.Value().(ast.Declaration)
	require.True(t, ok)
	require.True(t, decl.Variable.Equal(ast.Variable{Name: span.New("y"), Scope: ast.Local}))

	op := decl.Expression.(ast.Operation).Value
	outer := asBinary(t, op)
	require.Equal(t, ast.Multiplication, outer.Operator)
	inner := asBinary(t, outer.LeftOperand)
	require.Equal(t, ast.Multiplication, inner.Operator)
}

func TestReturnStatement(t *testing.T) {
	o := Statement(span.New("~ return ((b - a) * k) + a"))
	require.True(t, o.IsOk())
	ret, ok := o.Value().(ast.Return)
	require.True(t, ok)
	op := ret.Expression.(ast.Operation).Value
	add := asBinary(t, op)
	require.Equal(t, ast.Addition, add.Operator)
}

func TestReturnTriedBeforeLocalDeclaration(t *testing.T) {
	o := Statement(span.New("~ return 1"))
	require.True(t, o.IsOk())
	_, ok := o.Value().(ast.Return)
	require.True(t, ok)
}

func TestGlobalVariableDeclarationStatement(t *testing.T) {
	o := Statement(span.New("VAR total = 0"))
	require.True(t, o.IsOk())
	decl, ok := o.Value().(ast.Declaration)
	require.True(t, ok)
	require.Equal(t, ast.Global, decl.Variable.Scope)
	require.False(t, decl.Variable.Constant)
}

func TestGlobalConstantDeclarationStatement(t *testing.T) {
	o := Statement(span.New("CONST MAX = 100"))
	require.True(t, o.IsOk())
	decl, ok := o.Value().(ast.Declaration)
	require.True(t, ok)
	require.Equal(t, ast.Global, decl.Variable.Scope)
	require.True(t, decl.Variable.Constant)
}

func TestStatementWithoutLeadingTildeOrKeywordFails(t *testing.T) {
	o := Statement(span.New("1 + 2"))
	require.True(t, o.IsErr())
}
