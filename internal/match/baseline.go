package match

import (
	"quill/internal/hir"
	"quill/internal/types"
)

// BaselineOracle covers the shapes the validator meets most often:
// irrefutable heads (wildcards, bindings), boolean literals, and integer
// literals. Everything else is Unknown.
type BaselineOracle struct{}

var _ Oracle = BaselineOracle{}

// IsUseful implements Oracle for wildcard candidates. Non-wildcard
// candidates are out of the baseline's scope.
func (BaselineOracle) IsUseful(cx *Ctx, matrix *Matrix, candidate PatStack) Usefulness {
	if cx == nil || cx.Body == nil || !candidate.IsWild() {
		return Unknown
	}

	sawTrue, sawFalse := false, false
	intsSeen := 0

	for _, row := range matrix.Rows() {
		if row.IsWild() {
			return NotUseful
		}
		head, ok := row.Head()
		if !ok {
			return Unknown
		}
		pat := cx.Body.Pat(head)
		if pat == nil {
			return Unknown
		}
		switch pat.Kind {
		case hir.PatWild, hir.PatBind:
			// Irrefutable row: everything after it is covered.
			return NotUseful
		case hir.PatLiteralBool:
			if pat.BoolValue {
				sawTrue = true
			} else {
				sawFalse = true
			}
		case hir.PatLiteralInt:
			intsSeen++
		default:
			return Unknown
		}
	}

	ty, ok := cx.Types.Lookup(cx.Scrutinee)
	if !ok {
		return Unknown
	}
	if ty.Kind == types.KindRef {
		// Arms typed one deref below the scrutinee still participate, so
		// judge the domain one level down as well.
		ty, ok = cx.Types.Lookup(ty.Elem)
		if !ok {
			return Unknown
		}
	}
	switch ty.Kind {
	case types.KindBool:
		if sawTrue && sawFalse {
			return NotUseful
		}
		return Useful
	case types.KindInt, types.KindUint:
		// Finitely many literals never exhaust an integer domain here;
		// width-aware counting is beyond the baseline.
		_ = intsSeen
		return Useful
	default:
		return Unknown
	}
}
