package hir

import "quill/internal/syntax"

// SourceMap maps body-local ids back to the concrete syntax they were
// lowered from. Lookups are fallible: a synthesized expression has no
// single originating node, and callers must treat that as absence, never
// as an error.
type SourceMap struct {
	exprs map[ExprID]syntax.Node
	pats  map[PatID]syntax.Node
}

func newSourceMap() *SourceMap {
	return &SourceMap{
		exprs: make(map[ExprID]syntax.Node),
		pats:  make(map[PatID]syntax.Node),
	}
}

// ExprSyntax returns the node an expression was lowered from.
func (m *SourceMap) ExprSyntax(id ExprID) (syntax.Node, bool) {
	if m == nil {
		return nil, false
	}
	n, ok := m.exprs[id]
	return n, ok
}

// PatSyntax returns the node a pattern was lowered from.
func (m *SourceMap) PatSyntax(id PatID) (syntax.Node, bool) {
	if m == nil {
		return nil, false
	}
	n, ok := m.pats[id]
	return n, ok
}
