package ast

// DebugPrinter renders any Expression, NAryOperation, Statement or Literal
// into a map[string]any tree suitable for json.Marshal. The provenance
// spelled out in every leaf node, literal or variable (offset/line/column),
// makes the result useful for diagnostics and tooling without needing an
// evaluator. Unary and Binary nodes carry no span of their own.
//
// DebugPrinter implements ExpressionVisitor, NAryOperationVisitor and
// StatementVisitor so it can walk a tree rooted at any of the three public
// entry points.
type DebugPrinter struct{}

func spanMap(offset int, line int32, column int, fragment string) map[string]any {
	return map[string]any{
		"offset":   offset,
		"line":     line,
		"column":   column,
		"fragment": fragment,
	}
}

func (p DebugPrinter) VisitLiteral(l Literal) any {
	switch lit := l.(type) {
	case IntegerLiteral:
		return map[string]any{
			"kind":  "Integer",
			"value": lit.Token.Value,
			"span":  spanMap(lit.Token.Span.Offset, lit.Token.Span.Line, lit.Token.Span.Column, lit.Token.Span.Fragment),
		}
	case RealLiteral:
		return map[string]any{
			"kind":  "Real",
			"value": lit.Token.Value,
			"span":  spanMap(lit.Token.Span.Offset, lit.Token.Span.Line, lit.Token.Span.Column, lit.Token.Span.Fragment),
		}
	case BooleanLiteral:
		return map[string]any{
			"kind":  "Boolean",
			"value": lit.Token.Value,
			"span":  spanMap(lit.Token.Span.Offset, lit.Token.Span.Line, lit.Token.Span.Column, lit.Token.Span.Fragment),
		}
	case StringLiteral:
		return map[string]any{
			"kind":  "String",
			"value": lit.Token.Value,
			"span":  spanMap(lit.Token.Span.Offset, lit.Token.Span.Line, lit.Token.Span.Column, lit.Token.Span.Fragment),
		}
	default:
		return map[string]any{"kind": "UnknownLiteral"}
	}
}

func (p DebugPrinter) VisitVariable(v Variable) any {
	return map[string]any{
		"kind":     "Variable",
		"name":     v.Name.Fragment,
		"scope":    v.Scope.String(),
		"constant": v.Constant,
		"span":     spanMap(v.Name.Offset, v.Name.Line, v.Name.Column, v.Name.Fragment),
	}
}

func (p DebugPrinter) VisitOperation(o Operation) any {
	return o.Value.Accept(p)
}

func (p DebugPrinter) VisitNullary(n Nullary) any {
	return n.Expression.Accept(p)
}

func (p DebugPrinter) VisitUnary(u Unary) any {
	return map[string]any{
		"kind":     "Unary",
		"operator": u.Operator.String(),
		"operand":  u.Operand.Accept(p),
	}
}

func (p DebugPrinter) VisitBinary(b Binary) any {
	return map[string]any{
		"kind":     "Binary",
		"operator": b.Operator.String(),
		"left":     b.LeftOperand.Accept(p),
		"right":    b.RightOperand.Accept(p),
	}
}

func (p DebugPrinter) VisitDeclaration(d Declaration) any {
	return map[string]any{
		"kind":       "Declaration",
		"variable":   p.VisitVariable(d.Variable),
		"expression": d.Expression.Accept(p),
	}
}

func (p DebugPrinter) VisitReturn(r Return) any {
	return map[string]any{
		"kind":       "Return",
		"expression": r.Expression.Accept(p),
	}
}
