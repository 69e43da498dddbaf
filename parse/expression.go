package parse

import (
	"rink/ast"
	"rink/span"
)

// Expression is the entry point into the full operator-precedence
// cascade, starting at level 1 (logical, the lowest precedence) and
// bottoming out at leaf (literal | variable | parenthesized group). The
// resulting NAryOperation tree is always wrapped as an ast.Operation,
// including the degenerate case of a single leaf with no operators
// applied, keeping ParseExpression's result shape uniform.
func Expression(s span.Span) Outcome[ast.Expression] {
	o := logicalLevel(s)
	if !o.IsOk() {
		return convert[ast.NAryOperation, ast.Expression](o)
	}
	return Ok(o.Remainder(), ast.Expression(ast.Operation{Value: o.Value()}))
}
