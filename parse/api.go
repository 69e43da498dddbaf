package parse

import (
	"rink/ast"
	"rink/span"
)

// Result carries a successfully parsed value together with whatever of
// the input span was left unconsumed.
type Result[T any] struct {
	Value     T
	Remainder span.Span
}

// run wraps a recognizer for the public surface: leading trivia is
// skipped, and an Incomplete outcome (which only makes sense for a
// caller that might supply more bytes later) is turned into a Complete
// error, since every public entry point here is handed a finished
// in-memory string with no more bytes ever coming.
func run[T any](p ParseFunc[T], input string) (Result[T], error) {
	s := span.New(input)
	o := First(p)(s)
	switch {
	case o.IsOk():
		return Result[T]{Value: o.Value(), Remainder: o.Remainder()}, nil
	case o.IsIncomplete():
		return Result[T]{}, NewParseError(KindComplete, s)
	default:
		return Result[T]{}, o.Err()
	}
}

// ParseExpression parses a single expression from input, skipping any
// leading trivia.
func ParseExpression(input string) (Result[ast.Expression], error) {
	return run(Expression, input)
}

// ParseStatement parses a single statement from input, skipping any
// leading trivia.
func ParseStatement(input string) (Result[ast.Statement], error) {
	return run(Statement, input)
}

// ParseLiteral parses a single literal from input, skipping any leading
// trivia.
func ParseLiteral(input string) (Result[ast.Literal], error) {
	return run(Literal, input)
}
