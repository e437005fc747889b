package adt

import (
	"quill/internal/source"
	"quill/internal/syntax"
)

// TypeRefKind discriminates TypeRef.
type TypeRefKind uint8

const (
	// TypeRefPath is a declared type annotation kept as raw path text.
	TypeRefPath TypeRefKind = iota
	// TypeRefError is the placeholder for an omitted or unparsable
	// annotation. Lowering never fails on one.
	TypeRefError
)

// TypeRef is the declared type of a field, uninterpreted by this core.
// Value-comparable.
type TypeRef struct {
	Kind TypeRefKind
	Path source.StringID
}

// TypeRefFromSyntax resolves an optional annotation, degrading to the error
// placeholder.
func TypeRefFromSyntax(t *syntax.TypeSyntax) TypeRef {
	if t == nil {
		return TypeRef{Kind: TypeRefError}
	}
	return TypeRef{Kind: TypeRefPath, Path: t.Text}
}

// RawVisibility is a field's resolved visibility.
type RawVisibility uint8

const (
	// VisPrivate is the default when syntax carries no marker.
	VisPrivate RawVisibility = iota
	VisPublic
)

// VisibilityFromSyntax resolves an optional visibility marker.
func VisibilityFromSyntax(v syntax.VisKind) RawVisibility {
	if v == syntax.VisPub {
		return VisPublic
	}
	return VisPrivate
}
