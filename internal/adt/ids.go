// Package adt holds the semantic model of algebraic data types: one
// immutable, syntax-independent description per struct, union or enum
// definition. Values here are cacheable and compare structurally; the
// correspondence back to concrete syntax lives in separate source maps
// rebuilt on demand.
package adt

type (
	// StructID is the stable definition id of a struct, assigned by the
	// surrounding name-resolution layer.
	StructID uint32
	// UnionID is the stable definition id of a union.
	UnionID uint32
	// EnumID is the stable definition id of an enum.
	EnumID uint32

	// LocalStructFieldID indexes a field inside one VariantData arena.
	// It is unique only within its owning arena and stable for one
	// snapshot of the source.
	LocalStructFieldID uint32
	// LocalEnumVariantID indexes a variant inside one EnumData arena.
	LocalEnumVariantID uint32
)

const (
	NoStructID StructID = 0
	NoUnionID  UnionID  = 0
	NoEnumID   EnumID   = 0

	NoLocalStructFieldID LocalStructFieldID = 0
	NoLocalEnumVariantID LocalEnumVariantID = 0
)

func (id StructID) IsValid() bool           { return id != NoStructID }
func (id UnionID) IsValid() bool            { return id != NoUnionID }
func (id EnumID) IsValid() bool             { return id != NoEnumID }
func (id LocalStructFieldID) IsValid() bool { return id != NoLocalStructFieldID }
func (id LocalEnumVariantID) IsValid() bool { return id != NoLocalEnumVariantID }

// AdtKind discriminates AdtID.
type AdtKind uint8

const (
	AdtStruct AdtKind = iota
	AdtUnion
	AdtEnum
)

// AdtID names one whole ADT definition (struct, union, or enum) — the
// definition-level counterpart of VariantID. Closed sum, value-comparable.
type AdtID struct {
	Kind   AdtKind
	Struct StructID
	Union  UnionID
	Enum   EnumID
}

func StructAdt(id StructID) AdtID { return AdtID{Kind: AdtStruct, Struct: id} }
func UnionAdt(id UnionID) AdtID   { return AdtID{Kind: AdtUnion, Union: id} }
func EnumAdt(id EnumID) AdtID     { return AdtID{Kind: AdtEnum, Enum: id} }

// IsValid reports whether the id names an actual definition.
func (a AdtID) IsValid() bool {
	switch a.Kind {
	case AdtStruct:
		return a.Struct.IsValid()
	case AdtUnion:
		return a.Union.IsValid()
	case AdtEnum:
		return a.Enum.IsValid()
	}
	return false
}

// VariantDefKind discriminates VariantID.
type VariantDefKind uint8

const (
	VariantOfStruct VariantDefKind = iota
	VariantOfUnion
	VariantOfEnum
)

// VariantID names one field-carrying definition: a struct, a union, or a
// single enum variant. It is a closed sum; consumers switch on Kind
// exhaustively. The zero value is invalid.
type VariantID struct {
	Kind   VariantDefKind
	Struct StructID
	Union  UnionID
	Enum   EnumID
	Local  LocalEnumVariantID
}

// StructVariant wraps a struct definition id.
func StructVariant(id StructID) VariantID {
	return VariantID{Kind: VariantOfStruct, Struct: id}
}

// UnionVariant wraps a union definition id.
func UnionVariant(id UnionID) VariantID {
	return VariantID{Kind: VariantOfUnion, Union: id}
}

// EnumVariant addresses one variant of an enum.
func EnumVariant(parent EnumID, local LocalEnumVariantID) VariantID {
	return VariantID{Kind: VariantOfEnum, Enum: parent, Local: local}
}

// IsValid reports whether the id names an actual definition.
func (v VariantID) IsValid() bool {
	switch v.Kind {
	case VariantOfStruct:
		return v.Struct.IsValid()
	case VariantOfUnion:
		return v.Union.IsValid()
	case VariantOfEnum:
		return v.Enum.IsValid() && v.Local.IsValid()
	}
	return false
}
