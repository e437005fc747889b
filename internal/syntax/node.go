// Package syntax models the concrete-syntax surface the semantic core
// consumes. The real tree lives in the surrounding tool; this package keeps
// just enough structure — nodes with spans, optional name tokens, field
// lists — for lowering and for anchoring diagnostics back at source.
package syntax

import "quill/internal/source"

// NodeKind discriminates syntax pointers.
type NodeKind uint8

const (
	NodeInvalid NodeKind = iota
	NodeStructDecl
	NodeUnionDecl
	NodeEnumDecl
	NodeEnumVariant
	NodeRecordFieldDef
	NodeTupleFieldDef
	NodeFieldList
	NodeExpr
	NodeRecordLit
	NodeRecordFieldListExpr
	NodeMatchExpr
	NodeMatchArmList
	NodePattern
)

func (k NodeKind) String() string {
	switch k {
	case NodeStructDecl:
		return "StructDecl"
	case NodeUnionDecl:
		return "UnionDecl"
	case NodeEnumDecl:
		return "EnumDecl"
	case NodeEnumVariant:
		return "EnumVariant"
	case NodeRecordFieldDef:
		return "RecordFieldDef"
	case NodeTupleFieldDef:
		return "TupleFieldDef"
	case NodeFieldList:
		return "FieldList"
	case NodeExpr:
		return "Expr"
	case NodeRecordLit:
		return "RecordLit"
	case NodeRecordFieldListExpr:
		return "RecordFieldListExpr"
	case NodeMatchExpr:
		return "MatchExpr"
	case NodeMatchArmList:
		return "MatchArmList"
	case NodePattern:
		return "Pattern"
	}
	return "Invalid"
}

// NodePtr is a stable, value-comparable pointer to one concrete syntax node:
// the node's kind plus its byte range. It survives semantic lowering, so a
// diagnostic computed on cached semantic values can still anchor at source.
type NodePtr struct {
	Kind NodeKind
	Span source.Span
}

// Valid reports whether the pointer refers to an actual node.
func (p NodePtr) Valid() bool {
	return p.Kind != NodeInvalid && p.Span.File != source.NoFileID
}

// Ident is a name token.
type Ident struct {
	Text source.StringID
	Span source.Span
}

// TypeSyntax is the declared-type annotation of a field, kept as raw path
// text; the semantic core never interprets it beyond identity.
type TypeSyntax struct {
	Text source.StringID
	Span source.Span
}

// VisKind is the syntactic visibility marker on a field.
type VisKind uint8

const (
	// VisUnspecified means no marker was written; resolution defaults it.
	VisUnspecified VisKind = iota
	VisPub
)
