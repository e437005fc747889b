package hir

import (
	"testing"

	"quill/internal/source"
	"quill/internal/syntax"
)

func TestBuilderAllocatesDenseIDs(t *testing.T) {
	b := NewBuilder()
	sp := source.Span{File: 1, Start: 10, End: 14}

	first := b.Literal(syntax.ExprNode{Span: sp})
	second := b.Path(syntax.ExprNode{Span: sp})
	if first != 1 || second != 2 {
		t.Fatalf("ids = %d, %d; want 1, 2", first, second)
	}

	body, srcMap := b.Finish()
	if body.Expr(first).Kind != ExprLiteral || body.Expr(second).Kind != ExprPath {
		t.Fatal("expressions stored out of order")
	}
	if body.Expr(NoExprID) != nil || body.Expr(99) != nil {
		t.Fatal("sentinel or stale id resolved")
	}
	if node, ok := srcMap.ExprSyntax(first); !ok || node.Ptr().Span != sp {
		t.Fatalf("source lookup = %v, %v", node, ok)
	}
}

func TestSynthesizedNodesHaveNoSource(t *testing.T) {
	b := NewBuilder()
	missing := b.Missing()
	wild := b.WildPat(nil)
	body, srcMap := b.Finish()

	if body.Expr(missing).Kind != ExprMissing {
		t.Fatal("missing expression not stored")
	}
	if _, ok := srcMap.ExprSyntax(missing); ok {
		t.Fatal("synthesized expression has a source entry")
	}
	if _, ok := srcMap.PatSyntax(wild); ok {
		t.Fatal("synthesized pattern has a source entry")
	}
}

func TestBodyExprMarksOutermostBlock(t *testing.T) {
	b := NewBuilder()
	tail := b.Literal(nil)
	block := b.Block(nil, nil, tail)
	b.SetBodyExpr(block)
	body, _ := b.Finish()

	outer := body.Expr(body.BodyExpr)
	if outer == nil || outer.Kind != ExprBlock || outer.Tail != tail {
		t.Fatalf("body expr = %+v", outer)
	}
}
