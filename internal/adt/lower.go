package adt

import (
	"quill/internal/arena"
	"quill/internal/syntax"
)

// Lowering never fails: absent names become the missing sentinel, absent
// annotations the error type ref, absent bodies the unit shape. Downstream
// consumers must always have some model to reason about, even for
// structurally broken source.

// LowerStruct builds the semantic model of a struct declaration.
func LowerStruct(decl *syntax.StructDecl) *StructData {
	return &StructData{
		Name:        NameFromIdent(decl.Name),
		VariantData: newVariantData(decl.Fields),
	}
}

// LowerUnion builds the semantic model of a union declaration. The field
// list is record when present, unit otherwise — unions have no tuple form.
func LowerUnion(decl *syntax.UnionDecl) *StructData {
	return &StructData{
		Name:        NameFromIdent(decl.Name),
		VariantData: newVariantData(decl.FieldList()),
	}
}

// LowerEnum builds the semantic model of an enum declaration, variants in
// declaration order.
func LowerEnum(decl *syntax.EnumDecl) *EnumData {
	trace := arena.NewTraceForArena[EnumVariantData, syntax.EnumVariant]()
	lowerEnum(trace, decl)
	return &EnumData{
		Name:     NameFromIdent(decl.Name),
		Variants: trace.IntoArena(),
	}
}

// lowerEnum is the single deterministic walk over an enum's variants. Both
// the semantic arena and the variant source map replay it, so their indices
// always line up.
func lowerEnum(trace *arena.Trace[EnumVariantData, syntax.EnumVariant], decl *syntax.EnumDecl) {
	for _, v := range decl.Variants {
		v := v
		trace.Alloc(
			func() syntax.EnumVariant { return v },
			func() EnumVariantData {
				return EnumVariantData{
					Name:        NameFromIdent(v.Name),
					VariantData: newVariantData(v.Fields),
				}
			},
		)
	}
}

func newVariantData(fl syntax.FieldList) *VariantData {
	trace := arena.NewTraceForArena[StructFieldData, syntax.FieldSrc]()
	switch lowerFields(trace, fl) {
	case ShapeTuple:
		return &VariantData{shape: ShapeTuple, fields: trace.IntoArena()}
	case ShapeRecord:
		return &VariantData{shape: ShapeRecord, fields: trace.IntoArena()}
	default:
		return &VariantData{shape: ShapeUnit}
	}
}

// lowerFields is the shared field-list walk for all three definition kinds.
// Like lowerEnum it is replayed verbatim for source maps.
func lowerFields(trace *arena.Trace[StructFieldData, syntax.FieldSrc], fl syntax.FieldList) Shape {
	switch fl.Kind {
	case syntax.FieldsTuple:
		for i := range fl.Tuple {
			fd := fl.Tuple[i]
			idx := uint32(i) //nolint:gosec // declaration lists are small
			trace.Alloc(
				func() syntax.FieldSrc { return syntax.FieldSrc{Tuple: &fd} },
				func() StructFieldData {
					return StructFieldData{
						Name:       NewTupleFieldName(idx),
						TypeRef:    TypeRefFromSyntax(fd.Type),
						Visibility: VisibilityFromSyntax(fd.Vis),
					}
				},
			)
		}
		return ShapeTuple
	case syntax.FieldsRecord:
		for i := range fl.Record {
			fd := fl.Record[i]
			trace.Alloc(
				func() syntax.FieldSrc { return syntax.FieldSrc{Record: &fd} },
				func() StructFieldData {
					return StructFieldData{
						Name:       NameFromIdent(fd.Name),
						TypeRef:    TypeRefFromSyntax(fd.Type),
						Visibility: VisibilityFromSyntax(fd.Vis),
					}
				},
			)
		}
		return ShapeRecord
	default:
		return ShapeUnit
	}
}
