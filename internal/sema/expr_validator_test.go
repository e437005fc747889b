package sema_test

import (
	"strings"
	"testing"

	"quill/internal/adt"
	"quill/internal/db"
	"quill/internal/diag"
	"quill/internal/hir"
	"quill/internal/infer"
	"quill/internal/match"
	"quill/internal/sema"
	"quill/internal/source"
	"quill/internal/syntax"
	"quill/internal/types"
)

// env wires one function body through a database snapshot the way the
// driver does, with a bag capturing diagnostics.
type env struct {
	names *source.Interner
	tys   *types.Interner
	defs  *db.DB
	build *hir.Builder
	infer *infer.Result
	bag   *diag.Bag
	off   uint32
}

func newEnv() *env {
	names := source.NewInterner()
	return &env{
		names: names,
		tys:   types.NewInterner(),
		defs:  db.New(names, types.NewInterner()),
		build: hir.NewBuilder(),
		infer: infer.NewResult(),
		bag:   diag.NewBag(16),
	}
}

func (e *env) span() source.Span {
	e.off += 10
	return source.Span{File: 1, Start: e.off, End: e.off + 4}
}

func (e *env) ident(text string) *syntax.Ident {
	return &syntax.Ident{Text: e.names.Intern(text), Span: e.span()}
}

func (e *env) name(text string) adt.Name {
	return adt.NewName(e.names.Intern(text))
}

func (e *env) recordField(name string) syntax.RecordFieldDef {
	return syntax.RecordFieldDef{
		Name: e.ident(name),
		Type: &syntax.TypeSyntax{Text: e.names.Intern("int"), Span: e.span()},
		Span: e.span(),
	}
}

// addPoint registers `struct Point { x: int, y: int }`.
func (e *env) addPoint() adt.StructID {
	return e.defs.AddStruct(&syntax.StructDecl{
		Name: e.ident("Point"),
		Fields: syntax.FieldList{
			Kind:   syntax.FieldsRecord,
			Record: []syntax.RecordFieldDef{e.recordField("x"), e.recordField("y")},
			Span:   e.span(),
		},
		Span: e.span(),
	})
}

func (e *env) validate(t *testing.T) {
	t.Helper()
	body, srcMap := e.build.Finish()
	fn := e.defs.AddFunction(&db.Function{Name: "f", Body: body, SrcMap: srcMap, Infer: e.infer})
	v := sema.NewExprValidator(fn, body, srcMap, e.infer, sema.Deps{
		Defs:     e.defs,
		Types:    e.tys,
		Resolver: e.defs.ResolverFor(fn),
		Oracle:   match.BaselineOracle{},
		Names:    e.names,
	}, diag.BagReporter{Bag: e.bag})
	v.ValidateBody()
}

func (e *env) codes() []diag.Code {
	var out []diag.Code
	for _, d := range e.bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

// recordLit allocates `Point { <fields> }` with syntax attached.
func (e *env) recordLit(fields []hir.RecordLitField, spread hir.ExprID) (hir.ExprID, syntax.RecordLitNode) {
	node := syntax.RecordLitNode{
		Span:      e.span(),
		FieldList: syntax.NodePtr{Kind: syntax.NodeRecordFieldListExpr, Span: e.span()},
	}
	return e.build.RecordLit(node, fields, spread), node
}

func TestMissingFieldsNoSpread(t *testing.T) {
	e := newEnv()
	point := e.addPoint()

	x := e.build.Literal(syntax.ExprNode{Span: e.span()})
	id, node := e.recordLit([]hir.RecordLitField{{Name: e.name("x"), Expr: x}}, hir.NoExprID)
	e.infer.RecordExprVariant(id, adt.StructVariant(point))

	e.validate(t)

	if got := e.codes(); len(got) != 1 || got[0] != diag.SemaMissingFields {
		t.Fatalf("codes = %v, want [SemaMissingFields]", got)
	}
	d := e.bag.Items()[0]
	if d.Primary != node.FieldList.Span {
		t.Fatalf("anchored at %v, want field list %v", d.Primary, node.FieldList.Span)
	}
	if !strings.Contains(d.Message, "y") || strings.Contains(d.Message, "x") {
		t.Fatalf("message = %q", d.Message)
	}
}

func TestMissingFieldsSuppressedBySpread(t *testing.T) {
	e := newEnv()
	point := e.addPoint()

	x := e.build.Literal(syntax.ExprNode{Span: e.span()})
	rest := e.build.Path(syntax.ExprNode{Span: e.span()})
	id, _ := e.recordLit([]hir.RecordLitField{{Name: e.name("x"), Expr: x}}, rest)
	e.infer.RecordExprVariant(id, adt.StructVariant(point))

	e.validate(t)

	if e.bag.Len() != 0 {
		t.Fatalf("spread literal flagged: %v", e.codes())
	}
}

func TestMissingFieldsSkipsUnions(t *testing.T) {
	e := newEnv()
	union := e.defs.AddUnion(&syntax.UnionDecl{
		Name:   e.ident("Raw"),
		Record: []syntax.RecordFieldDef{e.recordField("bits"), e.recordField("tag")},
		Body:   e.span(),
		Span:   e.span(),
	})

	id, _ := e.recordLit(nil, hir.NoExprID)
	e.infer.RecordExprVariant(id, adt.UnionVariant(union))

	e.validate(t)

	if e.bag.Len() != 0 {
		t.Fatalf("union literal flagged: %v", e.codes())
	}
}

func TestMissingFieldsSkipsUnresolvedVariant(t *testing.T) {
	e := newEnv()
	e.addPoint()

	// No variant resolution recorded for the literal.
	e.recordLit(nil, hir.NoExprID)
	e.validate(t)

	if e.bag.Len() != 0 {
		t.Fatalf("unresolved literal flagged: %v", e.codes())
	}
}

func TestMissingFieldsDroppedOnSourceMapMiss(t *testing.T) {
	e := newEnv()
	point := e.addPoint()

	// Synthesized literal: no syntax node, so the diagnostic must drop.
	id := e.build.RecordLit(nil, nil, hir.NoExprID)
	e.infer.RecordExprVariant(id, adt.StructVariant(point))

	e.validate(t)

	if e.bag.Len() != 0 {
		t.Fatalf("synthesized literal flagged: %v", e.codes())
	}
}

// matchOverBool builds `match b { <arms> }` with every arm typed bool.
func (e *env) matchOverBool(armValues []bool, wild bool) hir.ExprID {
	scrut := e.build.Path(syntax.ExprNode{Span: e.span()})
	e.infer.RecordExprType(scrut, e.tys.Builtins().Bool)

	var arms []hir.MatchArm
	for _, v := range armValues {
		pat := e.build.BoolPat(syntax.PatternNode{Span: e.span()}, v)
		e.infer.RecordPatType(pat, e.tys.Builtins().Bool)
		arms = append(arms, hir.MatchArm{Pat: pat, Expr: e.build.Literal(syntax.ExprNode{Span: e.span()})})
	}
	if wild {
		pat := e.build.WildPat(syntax.PatternNode{Span: e.span()})
		e.infer.RecordPatType(pat, e.tys.Builtins().Bool)
		arms = append(arms, hir.MatchArm{Pat: pat, Expr: e.build.Literal(syntax.ExprNode{Span: e.span()})})
	}

	node := syntax.MatchExprNode{
		Span:      e.span(),
		Scrutinee: syntax.NodePtr{Kind: syntax.NodeExpr, Span: e.span()},
		ArmList:   syntax.NodePtr{Kind: syntax.NodeMatchArmList, Span: e.span()},
	}
	return e.build.Match(node, scrut, arms)
}

func TestMatchCoveredBool(t *testing.T) {
	e := newEnv()
	e.matchOverBool([]bool{true, false}, false)
	e.validate(t)
	if e.bag.Len() != 0 {
		t.Fatalf("covered match flagged: %v", e.codes())
	}
}

func TestMatchUncoveredBool(t *testing.T) {
	e := newEnv()
	e.matchOverBool([]bool{true}, false)
	e.validate(t)
	if got := e.codes(); len(got) != 1 || got[0] != diag.SemaMissingMatchArms {
		t.Fatalf("codes = %v, want [SemaMissingMatchArms]", got)
	}
}

func TestMatchWildcardArmCovers(t *testing.T) {
	e := newEnv()
	e.matchOverBool([]bool{true}, true)
	e.validate(t)
	if e.bag.Len() != 0 {
		t.Fatalf("wildcard-covered match flagged: %v", e.codes())
	}
}

func TestMatchSkipsUnknownScrutinee(t *testing.T) {
	e := newEnv()
	scrut := e.build.Path(syntax.ExprNode{Span: e.span()})
	// No type recorded for the scrutinee.
	pat := e.build.BoolPat(syntax.PatternNode{Span: e.span()}, true)
	e.infer.RecordPatType(pat, e.tys.Builtins().Bool)
	e.build.Match(syntax.MatchExprNode{Span: e.span()}, scrut,
		[]hir.MatchArm{{Pat: pat, Expr: e.build.Literal(nil)}})

	e.validate(t)
	if e.bag.Len() != 0 {
		t.Fatalf("unknown scrutinee flagged: %v", e.codes())
	}
}

func TestMatchAutoderefIncludesArm(t *testing.T) {
	e := newEnv()
	boolTy := e.tys.Builtins().Bool
	refBool := e.tys.Intern(types.MakeRef(boolTy))

	scrut := e.build.Path(syntax.ExprNode{Span: e.span()})
	e.infer.RecordExprType(scrut, refBool)

	var arms []hir.MatchArm
	for _, v := range []bool{true, false} {
		pat := e.build.BoolPat(syntax.PatternNode{Span: e.span()}, v)
		// Pattern type is bool; the scrutinee is &bool. One deref layer
		// must be tolerated, so both arms enter the matrix.
		e.infer.RecordPatType(pat, boolTy)
		arms = append(arms, hir.MatchArm{Pat: pat, Expr: e.build.Literal(nil)})
	}
	e.build.Match(syntax.MatchExprNode{
		Span:      e.span(),
		Scrutinee: syntax.NodePtr{Kind: syntax.NodeExpr, Span: e.span()},
		ArmList:   syntax.NodePtr{Kind: syntax.NodeMatchArmList, Span: e.span()},
	}, scrut, arms)

	e.validate(t)
	if e.bag.Len() != 0 {
		t.Fatalf("autoderef arms excluded, match flagged: %v", e.codes())
	}
}

func TestMatchAutoderefUncoveredReports(t *testing.T) {
	e := newEnv()
	boolTy := e.tys.Builtins().Bool
	refBool := e.tys.Intern(types.MakeRef(boolTy))

	scrut := e.build.Path(syntax.ExprNode{Span: e.span()})
	e.infer.RecordExprType(scrut, refBool)
	pat := e.build.BoolPat(syntax.PatternNode{Span: e.span()}, true)
	e.infer.RecordPatType(pat, boolTy)

	e.build.Match(syntax.MatchExprNode{
		Span:      e.span(),
		Scrutinee: syntax.NodePtr{Kind: syntax.NodeExpr, Span: e.span()},
		ArmList:   syntax.NodePtr{Kind: syntax.NodeMatchArmList, Span: e.span()},
	}, scrut, []hir.MatchArm{{Pat: pat, Expr: e.build.Literal(nil)}})

	e.validate(t)
	if got := e.codes(); len(got) != 1 || got[0] != diag.SemaMissingMatchArms {
		t.Fatalf("codes = %v, want [SemaMissingMatchArms]", got)
	}
}

func TestMatchExcludesMismatchedArms(t *testing.T) {
	e := newEnv()
	boolTy := e.tys.Builtins().Bool

	scrut := e.build.Path(syntax.ExprNode{Span: e.span()})
	e.infer.RecordExprType(scrut, boolTy)

	good := e.build.BoolPat(syntax.PatternNode{Span: e.span()}, true)
	e.infer.RecordPatType(good, boolTy)
	bad := e.build.BoolPat(syntax.PatternNode{Span: e.span()}, false)
	e.infer.RecordPatType(bad, e.tys.Builtins().Int) // wrong type: excluded

	e.build.Match(syntax.MatchExprNode{
		Span:      e.span(),
		Scrutinee: syntax.NodePtr{Kind: syntax.NodeExpr, Span: e.span()},
		ArmList:   syntax.NodePtr{Kind: syntax.NodeMatchArmList, Span: e.span()},
	}, scrut, []hir.MatchArm{
		{Pat: good, Expr: e.build.Literal(nil)},
		{Pat: bad, Expr: e.build.Literal(nil)},
	})

	e.validate(t)
	if got := e.codes(); len(got) != 1 || got[0] != diag.SemaMissingMatchArms {
		t.Fatalf("codes = %v, want [SemaMissingMatchArms]", got)
	}
}

// resultEnv registers the outcome enum and returns its Result<int, Error>
// application plus the tail span.
func (e *env) okWrapBody(actual types.TypeID) (tailSpan source.Span) {
	resultEnum := e.defs.AddEnum(&syntax.EnumDecl{
		Name: e.ident("Result"),
		Variants: []syntax.EnumVariant{
			{Name: e.ident("Ok"), Span: e.span()},
			{Name: e.ident("Err"), Span: e.span()},
		},
		Span: e.span(),
	})
	e.defs.DefineKnownEnum(sema.ResultPath, resultEnum)

	intTy := e.tys.Builtins().Int
	errTy := e.tys.Intern(types.MakeAdt(adt.StructAdt(99)))
	resultApp := e.tys.Intern(types.MakeAdt(adt.EnumAdt(resultEnum), intTy, errTy))

	tailSpan = e.span()
	tail := e.build.Literal(syntax.ExprNode{Span: tailSpan})
	blockID := e.build.Block(syntax.ExprNode{Span: e.span()}, nil, tail)
	e.build.SetBodyExpr(blockID)
	e.infer.RecordMismatch(blockID, infer.Mismatch{Expected: resultApp, Actual: actual})
	return tailSpan
}

func TestOkWrapReported(t *testing.T) {
	e := newEnv()
	tailSpan := e.okWrapBody(e.tys.Builtins().Int)
	e.validate(t)

	if got := e.codes(); len(got) != 1 || got[0] != diag.SemaMissingOkWrap {
		t.Fatalf("codes = %v, want [SemaMissingOkWrap]", got)
	}
	d := e.bag.Items()[0]
	if d.Primary != tailSpan {
		t.Fatalf("anchored at %v, want tail %v", d.Primary, tailSpan)
	}
	if d.Severity != diag.SevWarning {
		t.Fatalf("severity = %v, want warning", d.Severity)
	}
}

func TestOkWrapSkipsWrongActual(t *testing.T) {
	e := newEnv()
	e.okWrapBody(e.tys.Builtins().String) // actual != success parameter
	e.validate(t)
	if e.bag.Len() != 0 {
		t.Fatalf("wrong actual flagged: %v", e.codes())
	}
}

func TestOkWrapSkipsShadowedResult(t *testing.T) {
	e := newEnv()
	e.okWrapBody(e.tys.Builtins().Int)

	body, srcMap := e.build.Finish()
	fn := e.defs.AddFunction(&db.Function{Name: "f", Body: body, SrcMap: srcMap, Infer: e.infer})
	e.defs.ShadowKnownName(fn, sema.ResultPath)
	v := sema.NewExprValidator(fn, body, srcMap, e.infer, sema.Deps{
		Defs:     e.defs,
		Types:    e.tys,
		Resolver: e.defs.ResolverFor(fn),
		Oracle:   match.BaselineOracle{},
		Names:    e.names,
	}, diag.BagReporter{Bag: e.bag})
	v.ValidateBody()

	if e.bag.Len() != 0 {
		t.Fatalf("shadowed Result still flagged: %v", e.codes())
	}
}

func TestOkWrapSkipsWrongArity(t *testing.T) {
	e := newEnv()
	resultEnum := e.defs.AddEnum(&syntax.EnumDecl{
		Name:     e.ident("Result"),
		Variants: []syntax.EnumVariant{{Name: e.ident("Ok"), Span: e.span()}},
		Span:     e.span(),
	})
	e.defs.DefineKnownEnum(sema.ResultPath, resultEnum)

	intTy := e.tys.Builtins().Int
	oneParam := e.tys.Intern(types.MakeAdt(adt.EnumAdt(resultEnum), intTy))

	tail := e.build.Literal(syntax.ExprNode{Span: e.span()})
	blockID := e.build.Block(syntax.ExprNode{Span: e.span()}, nil, tail)
	e.build.SetBodyExpr(blockID)
	e.infer.RecordMismatch(blockID, infer.Mismatch{Expected: oneParam, Actual: intTy})

	e.validate(t)
	if e.bag.Len() != 0 {
		t.Fatalf("single-parameter application flagged: %v", e.codes())
	}
}

func TestDiagnosticsFollowBodyOrder(t *testing.T) {
	e := newEnv()
	point := e.addPoint()

	for i := 0; i < 2; i++ {
		id, _ := e.recordLit(nil, hir.NoExprID)
		e.infer.RecordExprVariant(id, adt.StructVariant(point))
	}
	e.validate(t)

	items := e.bag.Items()
	if len(items) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(items))
	}
	if items[0].Primary.Start >= items[1].Primary.Start {
		t.Fatalf("diagnostics out of body order: %v then %v", items[0].Primary, items[1].Primary)
	}
}

func TestRecordPatternMissingFields(t *testing.T) {
	e := newEnv()
	point := e.addPoint()

	pat := e.build.RecordPat(syntax.PatternNode{Span: e.span()}, []hir.RecordFieldPat{
		{Name: e.name("x"), Pat: e.build.WildPat(nil)},
	})
	e.infer.RecordPatVariant(pat, adt.StructVariant(point))
	body, _ := e.build.Finish()

	res, ok := sema.RecordPatternMissingFields(e.defs, e.infer, pat, body.Pat(pat))
	if !ok {
		t.Fatal("pattern check did not apply")
	}
	if len(res.Missing) != 1 {
		t.Fatalf("missing = %v, want one entry", res.Missing)
	}
	vd := e.defs.VariantData(res.Variant)
	f := vd.Fields().Get(uint32(res.Missing[0]))
	if got := f.Name.Display(e.names); got != "y" {
		t.Fatalf("missing field = %q, want y", got)
	}
}

func TestRecordPatternSkipsUnions(t *testing.T) {
	e := newEnv()
	union := e.defs.AddUnion(&syntax.UnionDecl{
		Name:   e.ident("Raw"),
		Record: []syntax.RecordFieldDef{e.recordField("bits")},
		Body:   e.span(),
		Span:   e.span(),
	})

	pat := e.build.RecordPat(syntax.PatternNode{Span: e.span()}, nil)
	e.infer.RecordPatVariant(pat, adt.UnionVariant(union))
	body, _ := e.build.Finish()

	if _, ok := sema.RecordPatternMissingFields(e.defs, e.infer, pat, body.Pat(pat)); ok {
		t.Fatal("union pattern reported missing fields")
	}
}
