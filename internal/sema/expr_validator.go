package sema

import (
	"fmt"
	"strings"

	"quill/internal/adt"
	"quill/internal/diag"
	"quill/internal/hir"
	"quill/internal/infer"
	"quill/internal/match"
	"quill/internal/syntax"
	"quill/internal/types"
)

// ExprValidator walks one function body in arena order (== source order)
// and reports through its reporter. It never mutates the body, the
// inference result, or the semantic model.
type ExprValidator struct {
	fn       hir.FuncID
	body     *hir.Body
	srcMap   *hir.SourceMap
	infer    *infer.Result
	deps     Deps
	reporter diag.Reporter
}

func NewExprValidator(
	fn hir.FuncID,
	body *hir.Body,
	srcMap *hir.SourceMap,
	inferRes *infer.Result,
	deps Deps,
	reporter diag.Reporter,
) *ExprValidator {
	return &ExprValidator{
		fn:       fn,
		body:     body,
		srcMap:   srcMap,
		infer:    inferRes,
		deps:     deps,
		reporter: reporter,
	}
}

// ValidateBody runs the three checks over every expression of the body.
func (v *ExprValidator) ValidateBody() {
	if v.body == nil || v.infer == nil {
		return
	}

	for i, expr := range v.body.Exprs.Slice() {
		id := hir.ExprID(i + 1) //nolint:gosec // arena-bounded

		if res, ok := RecordLiteralMissingFields(v.deps.Defs, v.infer, id, &expr); ok && res.Exhaustive {
			v.reportMissingFields(id, res)
		}
		if expr.Kind == hir.ExprMatch {
			v.validateMatch(id, &expr)
		}
	}

	if body := v.body.Expr(v.body.BodyExpr); body != nil &&
		body.Kind == hir.ExprBlock && body.Tail.IsValid() {
		v.validateResultsInTailExpr(v.body.BodyExpr, body.Tail)
	}
}

func (v *ExprValidator) reportMissingFields(id hir.ExprID, res MissingFieldsResult) {
	node, ok := v.srcMap.ExprSyntax(id)
	if !ok {
		// Synthesized literal with no single syntax origin: drop.
		return
	}
	lit, ok := node.(syntax.RecordLitNode)
	if !ok || !lit.FieldList.Valid() {
		return
	}

	variantData := v.deps.Defs.VariantData(res.Variant)
	if variantData == nil {
		return
	}
	names := make([]string, 0, len(res.Missing))
	for _, fieldID := range res.Missing {
		f := variantData.Fields().Get(uint32(fieldID))
		if f == nil {
			continue
		}
		names = append(names, f.Name.Display(v.deps.Names))
	}
	if len(names) == 0 {
		return
	}

	v.reporter.Report(diag.NewError(
		diag.SemaMissingFields,
		lit.FieldList.Span,
		fmt.Sprintf("missing structure fields: %s", strings.Join(names, ", ")),
	))
}

func (v *ExprValidator) validateMatch(id hir.ExprID, expr *hir.Expr) {
	scrutTy := v.infer.TypeOfExpr(expr.Scrutinee)
	if scrutTy == types.NoTypeID {
		// Exhaustiveness cannot be judged without a concrete type.
		return
	}

	cx := &match.Ctx{
		Body:      v.body,
		Infer:     v.infer,
		Types:     v.deps.Types,
		Scrutinee: scrutTy,
	}

	seen := match.NewMatrix()
	for _, arm := range expr.Arms {
		patTy := v.infer.TypeOfPat(arm.Pat)
		if patTy == types.NoTypeID {
			// Unresolvable arm: excluded from the matrix, not fatal.
			continue
		}
		// An arm participates when its type equals the scrutinee type,
		// directly or after removing one reference layer.
		if patTy != scrutTy {
			inner, ok := v.deps.Types.AsReference(scrutTy)
			if !ok || inner != patTy {
				continue
			}
		}
		seen.Push(match.FromPattern(arm.Pat))
	}

	switch v.deps.Oracle.IsUseful(cx, seen, match.FromWild()) {
	case match.Useful:
		// Some value slips through the arms; fall through to report.
	case match.NotUseful:
		// Wildcard adds nothing: every value is already covered.
		return
	default:
		// Unimplemented shape: err on the side of no diagnostic.
		return
	}

	node, ok := v.srcMap.ExprSyntax(id)
	if !ok {
		return
	}
	m, ok := node.(syntax.MatchExprNode)
	if !ok || !m.Scrutinee.Valid() || !m.ArmList.Valid() {
		return
	}
	v.reporter.Report(diag.NewError(
		diag.SemaMissingMatchArms,
		m.Scrutinee.Span,
		"missing match arms: match does not cover all possible values",
	).WithNote(m.ArmList.Span, "arm list is not exhaustive"))
}

func (v *ExprValidator) validateResultsInTailExpr(bodyID, tailID hir.ExprID) {
	// Inference records the mismatch on the whole block, not the tail.
	mismatch, ok := v.infer.TypeMismatchForExpr(bodyID)
	if !ok {
		return
	}

	resultEnum, ok := v.deps.Resolver.ResolveKnownEnum(ResultPath)
	if !ok {
		return
	}

	expected, ok := v.deps.Types.Lookup(mismatch.Expected)
	if !ok || expected.Kind != types.KindAdt || expected.Adt != adt.EnumAdt(resultEnum) {
		return
	}
	if len(expected.Params) != 2 || expected.Params[0] != mismatch.Actual {
		return
	}

	node, ok := v.srcMap.ExprSyntax(tailID)
	if !ok {
		return
	}
	v.reporter.Report(diag.New(
		diag.SevWarning,
		diag.SemaMissingOkWrap,
		node.Ptr().Span,
		"tail expression yields the success type; wrap it in `Ok(...)`",
	))
}
