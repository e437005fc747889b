// Package infer carries type-inference results into the validator. The
// inference engine itself lives outside this core; everything here is the
// immutable record it hands over per function body.
package infer

import (
	"quill/internal/adt"
	"quill/internal/hir"
	"quill/internal/types"
)

// Mismatch is one recorded expected/actual disagreement for an expression.
type Mismatch struct {
	Expected types.TypeID
	Actual   types.TypeID
}

// Result is the per-body inference outcome. Absence is always expressible:
// an unresolved expression simply has no entry, and every getter reports
// that rather than failing.
type Result struct {
	typeOfExpr    map[hir.ExprID]types.TypeID
	typeOfPat     map[hir.PatID]types.TypeID
	variantOfExpr map[hir.ExprID]adt.VariantID
	variantOfPat  map[hir.PatID]adt.VariantID
	mismatches    map[hir.ExprID]Mismatch
}

func NewResult() *Result {
	return &Result{
		typeOfExpr:    make(map[hir.ExprID]types.TypeID),
		typeOfPat:     make(map[hir.PatID]types.TypeID),
		variantOfExpr: make(map[hir.ExprID]adt.VariantID),
		variantOfPat:  make(map[hir.PatID]adt.VariantID),
		mismatches:    make(map[hir.ExprID]Mismatch),
	}
}

// Recording side, used by the inference engine (and test fixtures).

func (r *Result) RecordExprType(id hir.ExprID, ty types.TypeID) {
	r.typeOfExpr[id] = ty
}

func (r *Result) RecordPatType(id hir.PatID, ty types.TypeID) {
	r.typeOfPat[id] = ty
}

func (r *Result) RecordExprVariant(id hir.ExprID, v adt.VariantID) {
	r.variantOfExpr[id] = v
}

func (r *Result) RecordPatVariant(id hir.PatID, v adt.VariantID) {
	r.variantOfPat[id] = v
}

func (r *Result) RecordMismatch(id hir.ExprID, m Mismatch) {
	r.mismatches[id] = m
}

// Query side, used by the validator.

// TypeOfExpr returns the inferred type of an expression; NoTypeID when
// inference could not resolve it.
func (r *Result) TypeOfExpr(id hir.ExprID) types.TypeID {
	return r.typeOfExpr[id]
}

// TypeOfPat returns the inferred type of a pattern; NoTypeID when unknown.
func (r *Result) TypeOfPat(id hir.PatID) types.TypeID {
	return r.typeOfPat[id]
}

// VariantResolutionForExpr returns the variant a record literal resolved to.
func (r *Result) VariantResolutionForExpr(id hir.ExprID) (adt.VariantID, bool) {
	v, ok := r.variantOfExpr[id]
	return v, ok
}

// VariantResolutionForPat returns the variant a record pattern resolved to.
func (r *Result) VariantResolutionForPat(id hir.PatID) (adt.VariantID, bool) {
	v, ok := r.variantOfPat[id]
	return v, ok
}

// TypeMismatchForExpr returns the single recorded mismatch for an
// expression, if inference noted one.
func (r *Result) TypeMismatchForExpr(id hir.ExprID) (Mismatch, bool) {
	m, ok := r.mismatches[id]
	return m, ok
}
