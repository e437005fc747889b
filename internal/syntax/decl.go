package syntax

import "quill/internal/source"

// FieldListKind tags the syntactic shape of a definition body.
type FieldListKind uint8

const (
	// FieldsNone means the declaration has no field list at all.
	FieldsNone FieldListKind = iota
	FieldsRecord
	FieldsTuple
)

// RecordFieldDef is one `name: Type` entry of a record field list. Name or
// Type may be absent in malformed source; lowering substitutes sentinels.
type RecordFieldDef struct {
	Name *Ident
	Type *TypeSyntax
	Vis  VisKind
	Span source.Span
}

func (f RecordFieldDef) Ptr() NodePtr {
	return NodePtr{Kind: NodeRecordFieldDef, Span: f.Span}
}

// TupleFieldDef is one positional `Type` entry of a tuple field list.
type TupleFieldDef struct {
	Type *TypeSyntax
	Vis  VisKind
	Span source.Span
}

func (f TupleFieldDef) Ptr() NodePtr {
	return NodePtr{Kind: NodeTupleFieldDef, Span: f.Span}
}

// FieldSrc is the source of one lowered field: exactly one of Record or
// Tuple is set, depending on the list shape that produced it.
type FieldSrc struct {
	Record *RecordFieldDef
	Tuple  *TupleFieldDef
}

func (s FieldSrc) Ptr() NodePtr {
	switch {
	case s.Record != nil:
		return s.Record.Ptr()
	case s.Tuple != nil:
		return s.Tuple.Ptr()
	}
	return NodePtr{}
}

// FieldList is the record/tuple/absent body of a struct or enum variant.
type FieldList struct {
	Kind   FieldListKind
	Record []RecordFieldDef
	Tuple  []TupleFieldDef
	Span   source.Span
}

func (fl FieldList) Ptr() NodePtr {
	return NodePtr{Kind: NodeFieldList, Span: fl.Span}
}

// StructDecl is a `struct` declaration.
type StructDecl struct {
	Name   *Ident
	Fields FieldList
	Span   source.Span
}

func (d StructDecl) Ptr() NodePtr {
	return NodePtr{Kind: NodeStructDecl, Span: d.Span}
}

// UnionDecl is a `union` declaration. Unions only ever carry record bodies;
// Record is nil when the body is absent.
type UnionDecl struct {
	Name   *Ident
	Record []RecordFieldDef
	Body   source.Span
	Span   source.Span
}

func (d UnionDecl) Ptr() NodePtr {
	return NodePtr{Kind: NodeUnionDecl, Span: d.Span}
}

// FieldList normalizes the union body to the shared field-list shape:
// record when a body is present, none otherwise.
func (d UnionDecl) FieldList() FieldList {
	if d.Record == nil {
		return FieldList{Kind: FieldsNone, Span: d.Body}
	}
	return FieldList{Kind: FieldsRecord, Record: d.Record, Span: d.Body}
}

// EnumVariant is one variant of an enum declaration.
type EnumVariant struct {
	Name   *Ident
	Fields FieldList
	Span   source.Span
}

func (v EnumVariant) Ptr() NodePtr {
	return NodePtr{Kind: NodeEnumVariant, Span: v.Span}
}

// EnumDecl is an `enum` declaration with variants in declaration order.
type EnumDecl struct {
	Name     *Ident
	Variants []EnumVariant
	Span     source.Span
}

func (d EnumDecl) Ptr() NodePtr {
	return NodePtr{Kind: NodeEnumDecl, Span: d.Span}
}
