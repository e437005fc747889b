package adt

import (
	"quill/internal/arena"
	"quill/internal/syntax"
)

// Source maps are the inverse of lowering: local id back to the concrete
// node that produced it. They are built lazily — only when a diagnostic
// needs to point at a particular field — by replaying the exact walk that
// built the semantic arena through a map-only trace. Entry i is therefore
// always the node behind arena index i.

// StructFieldSources maps each field of a struct declaration to its node.
func StructFieldSources(decl *syntax.StructDecl) *arena.Map[syntax.FieldSrc] {
	return fieldSources(decl.Fields)
}

// UnionFieldSources maps each field of a union declaration to its node.
func UnionFieldSources(decl *syntax.UnionDecl) *arena.Map[syntax.FieldSrc] {
	return fieldSources(decl.FieldList())
}

// EnumVariantSources maps each variant of an enum declaration to its node.
func EnumVariantSources(decl *syntax.EnumDecl) *arena.Map[syntax.EnumVariant] {
	trace := arena.NewTraceForMap[EnumVariantData, syntax.EnumVariant]()
	lowerEnum(trace, decl)
	return trace.IntoMap()
}

// EnumVariantFieldSources maps each field of one enum variant to its node.
// A stale local id yields an empty map, mirroring the unit shape.
func EnumVariantFieldSources(decl *syntax.EnumDecl, local LocalEnumVariantID) *arena.Map[syntax.FieldSrc] {
	variants := EnumVariantSources(decl)
	v, ok := variants.Get(uint32(local))
	if !ok {
		return &arena.Map[syntax.FieldSrc]{}
	}
	return fieldSources(v.Fields)
}

func fieldSources(fl syntax.FieldList) *arena.Map[syntax.FieldSrc] {
	trace := arena.NewTraceForMap[StructFieldData, syntax.FieldSrc]()
	lowerFields(trace, fl)
	return trace.IntoMap()
}
