package hir

import "quill/internal/arena"

// Body is the lowered form of one function body. Expression iteration order
// is arena order, which is construction order from syntax — diagnostics for
// a body therefore come out in deterministic source order.
type Body struct {
	Exprs *arena.Arena[Expr]
	Pats  *arena.Arena[Pat]
	// BodyExpr is the outermost block of the function.
	BodyExpr ExprID
}

// Expr returns the expression for id, or nil for stale/sentinel ids.
func (b *Body) Expr(id ExprID) *Expr {
	return b.Exprs.Get(uint32(id))
}

// Pat returns the pattern for id, or nil for stale/sentinel ids.
func (b *Body) Pat(id PatID) *Pat {
	return b.Pats.Get(uint32(id))
}
