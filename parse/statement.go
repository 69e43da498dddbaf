package parse

import (
	"rink/ast"
	"rink/span"
	"rink/token"
)

// declarationWith builds a declaration statement parser parameterized by
// which variable form introduces it (local, global variable, global
// constant): `variable skip '=' skip expression`.
func declarationWith(variableParser ParseFunc[ast.Variable]) ParseFunc[ast.Statement] {
	return func(s span.Span) Outcome[ast.Statement] {
		varO := First(variableParser)(s)
		if !varO.IsOk() {
			return convert[ast.Variable, ast.Statement](varO)
		}
		assignO := First(Tag(token.ASSIGN))(varO.Remainder())
		if !assignO.IsOk() {
			return convert[span.Span, ast.Statement](assignO)
		}
		exprO := First(Expression)(assignO.Remainder())
		if !exprO.IsOk() {
			return convert[ast.Expression, ast.Statement](exprO)
		}
		return Ok(exprO.Remainder(), ast.Statement(ast.Declaration{Variable: varO.Value(), Expression: exprO.Value()}))
	}
}

// returnStatement recognizes `return skip expression`.
func returnStatement(s span.Span) Outcome[ast.Statement] {
	o := First(Tag(token.RETURN))(s)
	if !o.IsOk() {
		return convert[span.Span, ast.Statement](o)
	}
	exprO := First(Expression)(o.Remainder())
	if !exprO.IsOk() {
		return convert[ast.Expression, ast.Statement](exprO)
	}
	return Ok(exprO.Remainder(), ast.Statement(ast.Return{Expression: exprO.Value()}))
}

var localDeclaration = declarationWith(Variable)
var globalVariableDeclaration = declarationWith(GlobalVariable)
var globalConstantDeclaration = declarationWith(GlobalConstant)

// tildeStatement recognizes the `~`-prefixed forms: return tried before
// declaration, since "return" would otherwise be swallowed as a plain
// identifier by the local-variable declaration form.
func tildeStatement(s span.Span) Outcome[ast.Statement] {
	tildeO := First(Tag(token.STATEMENT))(s)
	if !tildeO.IsOk() {
		return convert[span.Span, ast.Statement](tildeO)
	}
	return AltComplete(returnStatement, localDeclaration)(tildeO.Remainder())
}

// Statement dispatches the `~`-prefixed forms (return, local
// declaration) and the two bare global forms (`VAR name = expr`,
// `CONST name = expr`).
func Statement(s span.Span) Outcome[ast.Statement] {
	return AltComplete(tildeStatement, globalVariableDeclaration, globalConstantDeclaration)(s)
}
