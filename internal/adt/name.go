package adt

import (
	"strconv"

	"quill/internal/source"
	"quill/internal/syntax"
)

// NameKind separates real identifiers from the two synthesized cases.
type NameKind uint8

const (
	// NameText is a declared identifier.
	NameText NameKind = iota
	// NameTuple is the positional name of a tuple field.
	NameTuple
	// NameMissing is the sentinel for syntax that omitted a name. It is a
	// distinct case, never an empty string, so nothing can confuse it with
	// a real (or empty) identifier.
	NameMissing
)

// Name is a semantic identifier. Value-comparable; lowering the same syntax
// twice yields equal Names.
type Name struct {
	kind NameKind
	text source.StringID
	idx  uint32
}

// NewName wraps a declared identifier.
func NewName(text source.StringID) Name {
	return Name{kind: NameText, text: text}
}

// NewTupleFieldName synthesizes the positional name of tuple field i.
func NewTupleFieldName(i uint32) Name {
	return Name{kind: NameTuple, idx: i}
}

// MissingName returns the missing-name sentinel.
func MissingName() Name {
	return Name{kind: NameMissing}
}

// NameFromIdent resolves an optional name token, degrading to the sentinel.
func NameFromIdent(id *syntax.Ident) Name {
	if id == nil {
		return MissingName()
	}
	return NewName(id.Text)
}

func (n Name) Kind() NameKind {
	return n.kind
}

// IsMissing reports whether n is the sentinel.
func (n Name) IsMissing() bool {
	return n.kind == NameMissing
}

// TupleIndex returns the position a tuple-field name encodes.
func (n Name) TupleIndex() (uint32, bool) {
	return n.idx, n.kind == NameTuple
}

// Display renders the name for diagnostics.
func (n Name) Display(names *source.Interner) string {
	switch n.kind {
	case NameTuple:
		return strconv.FormatUint(uint64(n.idx), 10)
	case NameMissing:
		return "[missing name]"
	}
	if names == nil {
		return "?"
	}
	s, ok := names.Lookup(n.text)
	if !ok {
		return "?"
	}
	return s
}
