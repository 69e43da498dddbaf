// Package ast defines the typed syntax tree this module's parsers build:
// literals, variables, n-ary operator expressions, and the two statement
// forms, each carrying the span.Span that produced it. Every node type
// implements the Visitor design pattern (an Accept method dispatching into
// a Visitor interface) so behavior such as the debug printer in printer.go
// can be added without changing the node types themselves.
//
// The tree is immutable once built: nothing in this package mutates a node
// after construction.
package ast

import "rink/span"

// Token pairs an arbitrary value with the Span that produced it, which is
// how every literal in this package preserves provenance back to the
// source text.
type Token[T any] struct {
	Value T
	Span  span.Span
}

// Literal is the sealed set of literal forms: IntegerLiteral, RealLiteral,
// BooleanLiteral, StringLiteral. It is itself one of the three arms of
// Expression.
type Literal interface {
	Expression
	literalNode()
}

// IntegerLiteral is an integer parsed from any of the four admitted
// radices (binary, octal, decimal, hexadecimal); all of them collapse to
// this one representation.
type IntegerLiteral struct {
	Token Token[int64]
}

// RealLiteral is a floating-point literal, or a decimal integer literal
// that overflowed int64 and was promoted.
type RealLiteral struct {
	Token Token[float64]
}

// BooleanLiteral is exactly `true` or `false`.
type BooleanLiteral struct {
	Token Token[bool]
}

// StringLiteral carries the decoded text (escapes already resolved) and
// the span covering the opening and closing quotes inclusive.
type StringLiteral struct {
	Token Token[string]
}

func (IntegerLiteral) literalNode() {}
func (RealLiteral) literalNode()    {}
func (BooleanLiteral) literalNode() {}
func (StringLiteral) literalNode()  {}

func (l IntegerLiteral) Accept(v ExpressionVisitor) any { return v.VisitLiteral(l) }
func (l RealLiteral) Accept(v ExpressionVisitor) any    { return v.VisitLiteral(l) }
func (l BooleanLiteral) Accept(v ExpressionVisitor) any { return v.VisitLiteral(l) }
func (l StringLiteral) Accept(v ExpressionVisitor) any  { return v.VisitLiteral(l) }

// VariableScope distinguishes a local binding from a global one.
type VariableScope int

const (
	Local VariableScope = iota
	Global
)

func (s VariableScope) String() string {
	if s == Global {
		return "Global"
	}
	return "Local"
}

// Variable is a reference to a binding: a bare identifier (Local), a `VAR
// name` declaration site (Global, non-constant), or a `CONST name`
// declaration site (Global, constant).
//
// Two Variables are equal iff Scope and the textual name match. Name's
// Span (and therefore its position) is deliberately excluded, since the
// same variable referenced twice in a program has two different spans but
// is the same variable. Use Equal, not ==, to compare variables.
type Variable struct {
	Name     span.Span
	Scope    VariableScope
	Constant bool
}

// Equal reports whether v and other name the same binding: same scope,
// same textual name. Span and Constant (which is a property of the
// declaration site, not identity) are not part of the comparison.
func (v Variable) Equal(other Variable) bool {
	return v.Scope == other.Scope && v.Name.Fragment == other.Name.Fragment
}

func (v Variable) Accept(visitor ExpressionVisitor) any { return visitor.VisitVariable(v) }

// UnaryOperator enumerates the prefix/postfix operators admitted at the
// unary_not and increment_and_decrement cascade levels. Minus and Plus are
// part of the closed enumeration but are not currently produced by any
// parser in this module: signed numeric literals are handled entirely
// within the number lexer, not via a generic unary prefix.
type UnaryOperator int

const (
	BitwiseComplement UnaryOperator = iota
	Decrement
	Increment
	Minus
	Negate
	Plus
)

func (op UnaryOperator) String() string {
	switch op {
	case BitwiseComplement:
		return "BitwiseComplement"
	case Decrement:
		return "Decrement"
	case Increment:
		return "Increment"
	case Minus:
		return "Minus"
	case Negate:
		return "Negate"
	case Plus:
		return "Plus"
	default:
		return "UnknownUnaryOperator"
	}
}

// BinaryOperator enumerates every operator admitted across the logical,
// bitwise, equality, relational, shift, additive and multiplicative
// cascade levels.
type BinaryOperator int

const (
	Addition BinaryOperator = iota
	Subtraction
	Multiplication
	Division
	Modulo
	Equal
	NotEqual
	LessThan
	LessThanOrEqualTo
	GreaterThan
	GreaterThanOrEqualTo
	LogicalAnd
	LogicalOr
	BitwiseAnd
	BitwiseOr
	BitwiseXor
	BitwiseShiftLeft
	BitwiseShiftRight
)

func (op BinaryOperator) String() string {
	switch op {
	case Addition:
		return "Addition"
	case Subtraction:
		return "Subtraction"
	case Multiplication:
		return "Multiplication"
	case Division:
		return "Division"
	case Modulo:
		return "Modulo"
	case Equal:
		return "Equal"
	case NotEqual:
		return "NotEqual"
	case LessThan:
		return "LessThan"
	case LessThanOrEqualTo:
		return "LessThanOrEqualTo"
	case GreaterThan:
		return "GreaterThan"
	case GreaterThanOrEqualTo:
		return "GreaterThanOrEqualTo"
	case LogicalAnd:
		return "LogicalAnd"
	case LogicalOr:
		return "LogicalOr"
	case BitwiseAnd:
		return "BitwiseAnd"
	case BitwiseOr:
		return "BitwiseOr"
	case BitwiseXor:
		return "BitwiseXor"
	case BitwiseShiftLeft:
		return "BitwiseShiftLeft"
	case BitwiseShiftRight:
		return "BitwiseShiftRight"
	default:
		return "UnknownBinaryOperator"
	}
}

// NAryOperation is the sum of the three operation arities: Nullary (no
// operator, just an operand), Unary (one operator, one operand), Binary
// (one operator, two operands). Unary and Binary hold NAryOperation
// children rather than Expression children, so an operation tree nests
// without re-wrapping through the Expression sum at every level.
type NAryOperation interface {
	naryOperationNode()
	Accept(v NAryOperationVisitor) any
}

// Nullary is an operation with no operator: a leaf Expression lifted into
// the NAryOperation sum so it can sit anywhere an operand is expected.
type Nullary struct {
	Expression Expression
}

// Unary applies a single prefix or postfix operator to one operand.
type Unary struct {
	Operator UnaryOperator
	Operand  NAryOperation
}

// Binary applies a single infix operator to two operands.
type Binary struct {
	Operator     BinaryOperator
	LeftOperand  NAryOperation
	RightOperand NAryOperation
}

func (Nullary) naryOperationNode() {}
func (Unary) naryOperationNode()   {}
func (Binary) naryOperationNode()  {}

func (n Nullary) Accept(v NAryOperationVisitor) any { return v.VisitNullary(n) }
func (u Unary) Accept(v NAryOperationVisitor) any   { return v.VisitUnary(u) }
func (b Binary) Accept(v NAryOperationVisitor) any  { return v.VisitBinary(b) }

// Operation lifts an NAryOperation into the Expression sum: the
// operation-tree arm of Expression.
type Operation struct {
	Value NAryOperation
}

func (o Operation) Accept(v ExpressionVisitor) any { return v.VisitOperation(o) }

// Expression is the sum of Literal, Operation (wrapping NAryOperation) and
// Variable: the three forms an expression can take.
type Expression interface {
	Accept(v ExpressionVisitor) any
}

// ExpressionVisitor operates on the three Expression arms.
type ExpressionVisitor interface {
	VisitLiteral(l Literal) any
	VisitOperation(o Operation) any
	VisitVariable(v Variable) any
}

// NAryOperationVisitor operates on the three NAryOperation arities.
type NAryOperationVisitor interface {
	VisitNullary(n Nullary) any
	VisitUnary(u Unary) any
	VisitBinary(b Binary) any
}

// Statement is the sum of Declaration and Return.
type Statement interface {
	Accept(v StatementVisitor) any
}

// Declaration binds the result of an expression to a variable:
// `~ name = expr`.
type Declaration struct {
	Variable   Variable
	Expression Expression
}

// Return yields a value from the enclosing block: `~ return expr`.
type Return struct {
	Expression Expression
}

func (d Declaration) Accept(v StatementVisitor) any { return v.VisitDeclaration(d) }
func (r Return) Accept(v StatementVisitor) any      { return v.VisitReturn(r) }

// StatementVisitor operates on the two Statement forms.
type StatementVisitor interface {
	VisitDeclaration(d Declaration) any
	VisitReturn(r Return) any
}
