package sema

import (
	"quill/internal/adt"
	"quill/internal/hir"
	"quill/internal/infer"
)

// MissingFieldsResult names the fields a record literal or pattern leaves
// unspecified, in the variant's declaration order.
type MissingFieldsResult struct {
	Variant adt.VariantID
	Missing []adt.LocalStructFieldID
	// Exhaustive is false when a spread defers the rest of the fields to
	// another value; such literals must not be flagged.
	Exhaustive bool
}

// RecordLiteralMissingFields computes the fields a record literal omits.
// Returns ok=false when the check does not apply: not a record literal, an
// unresolved variant, a union (unions may always omit fields), or nothing
// missing.
func RecordLiteralMissingFields(
	defs DefSource,
	inferRes *infer.Result,
	id hir.ExprID,
	expr *hir.Expr,
) (MissingFieldsResult, bool) {
	if expr.Kind != hir.ExprRecordLit {
		return MissingFieldsResult{}, false
	}

	variant, ok := inferRes.VariantResolutionForExpr(id)
	if !ok {
		return MissingFieldsResult{}, false
	}

	specified := make(map[adt.Name]struct{}, len(expr.Fields))
	for _, f := range expr.Fields {
		specified[f.Name] = struct{}{}
	}

	missing, ok := missingFields(defs, variant, specified)
	if !ok {
		return MissingFieldsResult{}, false
	}
	return MissingFieldsResult{
		Variant:    variant,
		Missing:    missing,
		Exhaustive: !expr.Spread.IsValid(),
	}, true
}

// RecordPatternMissingFields is the pattern-side counterpart, exposed as a
// pure function: it computes and returns, the caller decides whether to
// report. Patterns have no spread/exhaustive distinction — intentionally
// partial destructuring is expressed by a different language construct.
func RecordPatternMissingFields(
	defs DefSource,
	inferRes *infer.Result,
	id hir.PatID,
	pat *hir.Pat,
) (MissingFieldsResult, bool) {
	if pat.Kind != hir.PatRecord {
		return MissingFieldsResult{}, false
	}

	variant, ok := inferRes.VariantResolutionForPat(id)
	if !ok {
		return MissingFieldsResult{}, false
	}

	specified := make(map[adt.Name]struct{}, len(pat.Args))
	for _, f := range pat.Args {
		specified[f.Name] = struct{}{}
	}

	missing, ok := missingFields(defs, variant, specified)
	if !ok {
		return MissingFieldsResult{}, false
	}
	return MissingFieldsResult{Variant: variant, Missing: missing, Exhaustive: true}, true
}

func missingFields(
	defs DefSource,
	variant adt.VariantID,
	specified map[adt.Name]struct{},
) ([]adt.LocalStructFieldID, bool) {
	if variant.Kind == adt.VariantOfUnion {
		return nil, false
	}
	data := defs.VariantData(variant)
	if data == nil {
		return nil, false
	}

	var missing []adt.LocalStructFieldID
	for i, f := range data.Fields().Slice() {
		if _, ok := specified[f.Name]; ok {
			continue
		}
		missing = append(missing, adt.LocalStructFieldID(i+1)) //nolint:gosec // arena-bounded
	}
	if len(missing) == 0 {
		return nil, false
	}
	return missing, true
}
