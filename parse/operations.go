package parse

import (
	"rink/ast"
	"rink/span"
	"rink/token"
)

type binaryOp struct {
	tag      string
	operator ast.BinaryOperator
}

// binaryLevel builds one left-associative precedence level: parse one
// operand, then repeatedly try each of ops (in the given tie-break
// order) followed by another operand, left-folding into Binary nodes.
// Failing to find another operator, or an operator with no operand
// after it, stops the fold, leaving the remainder positioned before
// the unconsumed operator. Every precedence level 1-7 is an instance of
// this single helper.
func binaryLevel(operand ParseFunc[ast.NAryOperation], ops []binaryOp) ParseFunc[ast.NAryOperation] {
	tagParsers := make([]ParseFunc[span.Span], len(ops))
	for i, o := range ops {
		tagParsers[i] = Tag(o.tag)
	}
	matchOp := First(AltComplete(tagParsers...))
	rightOperand := First(operand)
	operatorFor := func(matched string) ast.BinaryOperator {
		for _, o := range ops {
			if o.tag == matched {
				return o.operator
			}
		}
		panic("parse: unrecognized operator tag " + matched)
	}

	return func(s span.Span) Outcome[ast.NAryOperation] {
		leftO := operand(s)
		if !leftO.IsOk() {
			return leftO
		}
		left := leftO.Value()
		cur := leftO.Remainder()
		for {
			opO := matchOp(cur)
			if !opO.IsOk() {
				break
			}
			rightO := rightOperand(opO.Remainder())
			if !rightO.IsOk() {
				break
			}
			left = ast.NAryOperation(ast.Binary{
				Operator:     operatorFor(opO.Value().Fragment),
				LeftOperand:  left,
				RightOperand: rightO.Value(),
			})
			cur = rightO.Remainder()
		}
		return Ok(cur, left)
	}
}

// bareExpression dispatches the operator-free expression forms:
// literal | variable | '(' bareExpression ')'. The parenthesized arm
// re-enters this dispatcher, not the operator cascade; parenthesized
// operator expressions are recognized by leaf's own group arm instead.
// Literals are tried before variables so that "true"/"false" are never
// taken as identifiers.
func bareExpression(s span.Span) Outcome[ast.Expression] {
	return AltComplete(
		Map(Literal, func(l ast.Literal) ast.Expression { return ast.Expression(l) }),
		Map(Variable, func(v ast.Variable) ast.Expression { return ast.Expression(v) }),
		Preceded(
			Tag(token.LEFT_PARENTHESIS),
			Terminated(First(bareExpression), First(Tag(token.RIGHT_PARENTHESIS))),
		),
	)(s)
}

// operationGroup recognizes '(' skip expr skip ')', re-entering the
// cascade at level 1 (logical, the lowest precedence) and yielding the
// interior operation tree unwrapped, so prefix and postfix operators
// compose directly onto it: "(1++)++" nests a second Increment around
// the first.
func operationGroup(s span.Span) Outcome[ast.NAryOperation] {
	return Preceded(
		Tag(token.LEFT_PARENTHESIS),
		Terminated(First(logicalLevel), First(Tag(token.RIGHT_PARENTHESIS))),
	)(s)
}

// leaf lifts a bare expression into the operation tree as a Nullary, or
// admits a parenthesized subexpression via operationGroup.
func leaf(s span.Span) Outcome[ast.NAryOperation] {
	return AltComplete(
		Map(bareExpression, func(e ast.Expression) ast.NAryOperation { return ast.NAryOperation(ast.Nullary{Expression: e}) }),
		operationGroup,
	)(s)
}

// nullaryLevel (precedence level 10) is the base of the cascade.
func nullaryLevel(s span.Span) Outcome[ast.NAryOperation] {
	return leaf(s)
}

var postfixOps = map[string]ast.UnaryOperator{
	token.INCREMENT: ast.Increment,
	token.DECREMENT: ast.Decrement,
}

// incrementDecrementLevel (precedence level 9) applies at most one
// postfix ++ / -- to its operand. Stacking requires an explicit
// parenthesized regrouping, e.g. "(1++)++", rather than repeated postfix
// application at this level.
func incrementDecrementLevel(s span.Span) Outcome[ast.NAryOperation] {
	operandO := nullaryLevel(s)
	if !operandO.IsOk() {
		return operandO
	}
	opO := AltComplete(Tag(token.INCREMENT), Tag(token.DECREMENT))(operandO.Remainder())
	if !opO.IsOk() {
		return operandO
	}
	operator := postfixOps[opO.Value().Fragment]
	return Ok(opO.Remainder(), ast.NAryOperation(ast.Unary{Operator: operator, Operand: operandO.Value()}))
}

var prefixOps = map[string]ast.UnaryOperator{
	token.BITWISE_NOT: ast.BitwiseComplement,
	token.BOOLEAN_NOT: ast.Negate,
}

// unaryNotLevel (precedence level 8) is right-associative: it recurses
// into itself after a prefix operator, so a run of prefix operators
// nests first-matched-outermost, e.g. "~!x++" -> ~(!(x++)). If the
// prefix arm does not pan out, the whole input backtracks into the
// postfix level.
func unaryNotLevel(s span.Span) Outcome[ast.NAryOperation] {
	opO := AltComplete(Tag(token.BITWISE_NOT), Tag(token.BOOLEAN_NOT))(s)
	if opO.IsOk() {
		operandO := unaryNotLevel(opO.Remainder())
		if operandO.IsOk() {
			operator := prefixOps[opO.Value().Fragment]
			return Ok(operandO.Remainder(), ast.NAryOperation(ast.Unary{Operator: operator, Operand: operandO.Value()}))
		}
	}
	return incrementDecrementLevel(s)
}

// The seven binary levels, highest precedence first. Parenthesized
// groups re-enter at logicalLevel from inside the cascade's own leaves,
// so the levels are wired in init rather than as initialization
// expressions, which would form an initialization cycle.
var (
	multiplicativeLevel ParseFunc[ast.NAryOperation]
	additiveLevel       ParseFunc[ast.NAryOperation]
	shiftLevel          ParseFunc[ast.NAryOperation]
	relationalLevel     ParseFunc[ast.NAryOperation]
	equalityLevel       ParseFunc[ast.NAryOperation]
	bitwiseLevel        ParseFunc[ast.NAryOperation]
	logicalLevel        ParseFunc[ast.NAryOperation]
)

func init() {
	multiplicativeLevel = binaryLevel(unaryNotLevel, []binaryOp{
		{token.MULTIPLY, ast.Multiplication},
		{token.DIVIDE, ast.Division},
		{token.MODULO, ast.Modulo},
	})

	additiveLevel = binaryLevel(multiplicativeLevel, []binaryOp{
		{token.ADD, ast.Addition},
		{token.MINUS, ast.Subtraction},
	})

	shiftLevel = binaryLevel(additiveLevel, []binaryOp{
		{token.BITWISE_LEFT_SHIFT, ast.BitwiseShiftLeft},
		{token.BITWISE_RIGHT_SHIFT, ast.BitwiseShiftRight},
	})

	relationalLevel = binaryLevel(shiftLevel, []binaryOp{
		{token.LESS_THAN_OR_EQUAL_TO, ast.LessThanOrEqualTo},
		{token.GREATER_THAN_OR_EQUAL_TO, ast.GreaterThanOrEqualTo},
		{token.LESS_THAN, ast.LessThan},
		{token.GREATER_THAN, ast.GreaterThan},
	})

	equalityLevel = binaryLevel(relationalLevel, []binaryOp{
		{token.EQUAL, ast.Equal},
		{token.NOT_EQUAL, ast.NotEqual},
	})

	bitwiseLevel = binaryLevel(equalityLevel, []binaryOp{
		{token.BITWISE_OR, ast.BitwiseOr},
		{token.BITWISE_XOR, ast.BitwiseXor},
		{token.BITWISE_AND, ast.BitwiseAnd},
	})

	logicalLevel = binaryLevel(bitwiseLevel, []binaryOp{
		{token.BOOLEAN_OR, ast.LogicalOr},
		{token.BOOLEAN_AND, ast.LogicalAnd},
	})
}
