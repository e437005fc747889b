package adt

import "quill/internal/arena"

// Shape reports which field-list form a VariantData describes.
type Shape uint8

const (
	ShapeRecord Shape = iota
	ShapeTuple
	ShapeUnit
)

func (s Shape) String() string {
	switch s {
	case ShapeRecord:
		return "record"
	case ShapeTuple:
		return "tuple"
	}
	return "unit"
}

// StructFieldData is a single field of a struct, union, or enum variant.
type StructFieldData struct {
	Name       Name
	TypeRef    TypeRef
	Visibility RawVisibility
}

// VariantData describes one field-list shape. A single instance is shared —
// by pointer, never cloned deep — between a StructData (or EnumVariantData)
// and everything downstream; equality is structural via Equal, not pointer
// identity, so independently lowered but identical definitions compare
// equal for caching.
type VariantData struct {
	shape  Shape
	fields *arena.Arena[StructFieldData]
}

// emptyFields backs Fields() for unit shapes so the accessor never
// allocates and never returns nil.
var emptyFields = arena.New[StructFieldData](0)

// NewVariantData assembles a shape from pre-built parts. Lowering does not
// use this; it exists for deserialization paths that reconstruct cached
// models. Unit shapes ignore fields.
func NewVariantData(shape Shape, fields *arena.Arena[StructFieldData]) *VariantData {
	if shape == ShapeUnit {
		return &VariantData{shape: ShapeUnit}
	}
	if fields == nil {
		fields = arena.New[StructFieldData](0)
	}
	return &VariantData{shape: shape, fields: fields}
}

// Kind reports the shape.
func (v *VariantData) Kind() Shape {
	if v == nil {
		return ShapeUnit
	}
	return v.shape
}

// Fields returns the field arena in declaration order. Unit shapes yield a
// shared empty arena rather than failing.
func (v *VariantData) Fields() *arena.Arena[StructFieldData] {
	if v == nil || v.fields == nil {
		return emptyFields
	}
	return v.fields
}

// Field scans for the first field named name and returns its local id.
// Field counts are small; no index is kept.
func (v *VariantData) Field(name Name) (LocalStructFieldID, bool) {
	for i, f := range v.Fields().Slice() {
		if f.Name == name {
			return LocalStructFieldID(i + 1), true //nolint:gosec // arena-bounded
		}
	}
	return NoLocalStructFieldID, false
}

// Equal compares shapes structurally.
func (v *VariantData) Equal(other *VariantData) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	return v.Fields().Equal(other.Fields(), func(a, b StructFieldData) bool { return a == b })
}

// StructData is the semantic model of a struct declaration. Unions reuse it
// unchanged: a union is a struct whose VariantData is always record or unit.
type StructData struct {
	Name        Name
	VariantData *VariantData
}

// Equal compares two struct models structurally.
func (d *StructData) Equal(other *StructData) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Name == other.Name && d.VariantData.Equal(other.VariantData)
}

// EnumVariantData is one variant of an enum.
type EnumVariantData struct {
	Name        Name
	VariantData *VariantData
}

// EnumData is the semantic model of an enum declaration; Variants preserves
// declaration order and is keyed by LocalEnumVariantID.
type EnumData struct {
	Name     Name
	Variants *arena.Arena[EnumVariantData]
}

// Variant returns the local id of the first variant named name.
func (d *EnumData) Variant(name Name) (LocalEnumVariantID, bool) {
	for i, v := range d.Variants.Slice() {
		if v.Name == name {
			return LocalEnumVariantID(i + 1), true //nolint:gosec // arena-bounded
		}
	}
	return NoLocalEnumVariantID, false
}

// VariantData returns the shape of the variant with the given local id, or
// nil when the id is stale.
func (d *EnumData) VariantData(id LocalEnumVariantID) *VariantData {
	v := d.Variants.Get(uint32(id))
	if v == nil {
		return nil
	}
	return v.VariantData
}

// Equal compares two enum models structurally.
func (d *EnumData) Equal(other *EnumData) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Name != other.Name {
		return false
	}
	return d.Variants.Equal(other.Variants, func(a, b EnumVariantData) bool {
		return a.Name == b.Name && a.VariantData.Equal(b.VariantData)
	})
}
