package hir

import (
	"quill/internal/adt"
	"quill/internal/arena"
	"quill/internal/syntax"
)

// Builder accumulates one body and its source map together, so every
// allocated id gets its origin recorded at the allocation site. Passing a
// nil node allocates a synthesized expression with no source entry.
type Builder struct {
	body   *Body
	srcMap *SourceMap
}

func NewBuilder() *Builder {
	return &Builder{
		body: &Body{
			Exprs: arena.New[Expr](16),
			Pats:  arena.New[Pat](8),
		},
		srcMap: newSourceMap(),
	}
}

func (b *Builder) allocExpr(node syntax.Node, e Expr) ExprID {
	id := ExprID(b.body.Exprs.Alloc(e))
	if node != nil {
		b.srcMap.exprs[id] = node
	}
	return id
}

func (b *Builder) allocPat(node syntax.Node, p Pat) PatID {
	id := PatID(b.body.Pats.Alloc(p))
	if node != nil {
		b.srcMap.pats[id] = node
	}
	return id
}

// Missing allocates the degraded-expression placeholder.
func (b *Builder) Missing() ExprID {
	return b.allocExpr(nil, Expr{Kind: ExprMissing})
}

// Literal allocates a literal expression.
func (b *Builder) Literal(node syntax.Node) ExprID {
	return b.allocExpr(node, Expr{Kind: ExprLiteral})
}

// Path allocates a named-value reference.
func (b *Builder) Path(node syntax.Node) ExprID {
	return b.allocExpr(node, Expr{Kind: ExprPath})
}

// Call allocates a call expression.
func (b *Builder) Call(node syntax.Node, callee ExprID, args ...ExprID) ExprID {
	return b.allocExpr(node, Expr{Kind: ExprCall, Callee: callee, Args: args})
}

// RecordLit allocates a record-literal expression. spread is NoExprID for
// literals without `..rest`.
func (b *Builder) RecordLit(node syntax.Node, fields []RecordLitField, spread ExprID) ExprID {
	return b.allocExpr(node, Expr{Kind: ExprRecordLit, Fields: fields, Spread: spread})
}

// Match allocates a match expression over ordered arms.
func (b *Builder) Match(node syntax.Node, scrutinee ExprID, arms []MatchArm) ExprID {
	return b.allocExpr(node, Expr{Kind: ExprMatch, Scrutinee: scrutinee, Arms: arms})
}

// Block allocates a block expression; tail is NoExprID when the block ends
// in a statement.
func (b *Builder) Block(node syntax.Node, stmts []ExprID, tail ExprID) ExprID {
	return b.allocExpr(node, Expr{Kind: ExprBlock, Stmts: stmts, Tail: tail})
}

// WildPat allocates `_`.
func (b *Builder) WildPat(node syntax.Node) PatID {
	return b.allocPat(node, Pat{Kind: PatWild})
}

// BindPat allocates a binding pattern.
func (b *Builder) BindPat(node syntax.Node, name adt.Name) PatID {
	return b.allocPat(node, Pat{Kind: PatBind, Name: name})
}

// BoolPat allocates a boolean literal pattern.
func (b *Builder) BoolPat(node syntax.Node, value bool) PatID {
	return b.allocPat(node, Pat{Kind: PatLiteralBool, BoolValue: value})
}

// IntPat allocates an integer literal pattern.
func (b *Builder) IntPat(node syntax.Node, value int64) PatID {
	return b.allocPat(node, Pat{Kind: PatLiteralInt, IntValue: value})
}

// RecordPat allocates a record-destructuring pattern.
func (b *Builder) RecordPat(node syntax.Node, args []RecordFieldPat) PatID {
	return b.allocPat(node, Pat{Kind: PatRecord, Args: args})
}

// SetBodyExpr marks the outermost block.
func (b *Builder) SetBodyExpr(id ExprID) {
	b.body.BodyExpr = id
}

// Finish returns the body and its source map. The builder must not be used
// afterwards.
func (b *Builder) Finish() (*Body, *SourceMap) {
	body, srcMap := b.body, b.srcMap
	b.body, b.srcMap = nil, nil
	return body, srcMap
}
