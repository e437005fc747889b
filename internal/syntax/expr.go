package syntax

import "quill/internal/source"

// Node is any syntax node a body source map can hand back.
type Node interface {
	Ptr() NodePtr
}

// ExprNode is a plain expression with no structure the validator cares
// about beyond its position.
type ExprNode struct {
	Span source.Span
}

func (n ExprNode) Ptr() NodePtr {
	return NodePtr{Kind: NodeExpr, Span: n.Span}
}

// RecordLitNode is a record-literal expression `Path { field: expr, ... }`.
// FieldList locates the braced list, which is where missing-field
// diagnostics anchor.
type RecordLitNode struct {
	Span      source.Span
	FieldList NodePtr
}

func (n RecordLitNode) Ptr() NodePtr {
	return NodePtr{Kind: NodeRecordLit, Span: n.Span}
}

// MatchExprNode is a `match scrutinee { arms }` expression.
type MatchExprNode struct {
	Span      source.Span
	Scrutinee NodePtr
	ArmList   NodePtr
}

func (n MatchExprNode) Ptr() NodePtr {
	return NodePtr{Kind: NodeMatchExpr, Span: n.Span}
}

// PatternNode is a pattern position, including record-destructuring
// patterns.
type PatternNode struct {
	Span source.Span
}

func (n PatternNode) Ptr() NodePtr {
	return NodePtr{Kind: NodePattern, Span: n.Span}
}
