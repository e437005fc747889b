// Package hir holds the lowered, arena-indexed representation of function
// bodies that the expression validator walks. Bodies are syntax-independent
// (and therefore cacheable); the correspondence back to concrete syntax is
// kept in a separate SourceMap consulted only when a diagnostic needs a
// position.
package hir

type (
	// FuncID identifies a function definition within a snapshot.
	FuncID uint32
	// ExprID identifies an expression within one body's arena.
	ExprID uint32
	// PatID identifies a pattern within one body's arena.
	PatID uint32
)

const (
	NoFuncID FuncID = 0
	NoExprID ExprID = 0
	NoPatID  PatID  = 0
)

func (id FuncID) IsValid() bool { return id != NoFuncID }
func (id ExprID) IsValid() bool { return id != NoExprID }
func (id PatID) IsValid() bool  { return id != NoPatID }
