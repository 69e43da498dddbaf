package parse

import (
	"rink/ast"
	"rink/span"
	"rink/token"
)

func variableOf(scope ast.VariableScope, constant bool) func(span.Span) ast.Variable {
	return func(name span.Span) ast.Variable {
		return ast.Variable{Name: name, Scope: scope, Constant: constant}
	}
}

// Variable recognizes a bare identifier as a local, non-constant
// variable reference. Leading trivia is the caller's concern, the same
// as for every other leaf recognizer.
var Variable ParseFunc[ast.Variable] = Map(ParseIdentifier, variableOf(ast.Local, false))

// GlobalVariable recognizes `VAR name` as a global, non-constant
// variable reference.
var GlobalVariable ParseFunc[ast.Variable] = Map(
	Preceded(Tag(token.GLOBAL_VARIABLE), First(ParseIdentifier)),
	variableOf(ast.Global, false),
)

// GlobalConstant recognizes `CONST name` as a global, constant variable
// reference.
var GlobalConstant ParseFunc[ast.Variable] = Map(
	Preceded(Tag(token.CONSTANT), First(ParseIdentifier)),
	variableOf(ast.Global, true),
)
