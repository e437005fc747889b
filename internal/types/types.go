// Package types holds the interned semantic type descriptors the expression
// validator consumes. Inference itself happens elsewhere; this package only
// gives its results stable, comparable identities.
package types

import (
	"fmt"

	"quill/internal/adt"
)

// TypeID uniquely identifies a type inside the interner. Two expressions
// have the same type exactly when their TypeIDs are equal.
type TypeID uint32

// NoTypeID marks the absence of a type (unresolved inference).
const NoTypeID TypeID = 0

// Kind enumerates the supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindUnit
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	// KindRef is a one-level reference &T.
	KindRef
	// KindAdt is an application of a struct/union/enum constructor to zero
	// or more type parameters.
	KindAdt
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindUnit:
		return "unit"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindRef:
		return "reference"
	case KindAdt:
		return "adt"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Width captures the precision of numeric primitives.
type Width uint8

const (
	WidthAny Width = 0
	Width8   Width = 8
	Width16  Width = 16
	Width32  Width = 32
	Width64  Width = 64
)

// Type is a structural descriptor. Descriptors are interned, so identity
// comparisons go through TypeID; the struct itself is only used at
// construction and inspection sites.
type Type struct {
	Kind   Kind
	Width  Width  // numeric primitives
	Elem   TypeID // references
	Adt    adt.AdtID
	Params []TypeID // ADT applications, in declaration order
}

// MakeInt describes a signed integer of the given width.
func MakeInt(width Width) Type {
	return Type{Kind: KindInt, Width: width}
}

// MakeUint describes an unsigned integer of the given width.
func MakeUint(width Width) Type {
	return Type{Kind: KindUint, Width: width}
}

// MakeFloat describes a floating-point type.
func MakeFloat(width Width) Type {
	return Type{Kind: KindFloat, Width: width}
}

// MakeRef describes &T.
func MakeRef(elem TypeID) Type {
	return Type{Kind: KindRef, Elem: elem}
}

// MakeAdt describes the application of an ADT constructor to params.
func MakeAdt(id adt.AdtID, params ...TypeID) Type {
	return Type{Kind: KindAdt, Adt: id, Params: params}
}
