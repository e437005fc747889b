package types

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for common primitive types.
type Builtins struct {
	Invalid TypeID
	Unit    TypeID
	Bool    TypeID
	Int     TypeID
	Uint    TypeID
	Float   TypeID
	String  TypeID
}

// Interner provides stable TypeIDs by hashing structural descriptors.
// Interning the same descriptor twice yields the same id, which is what
// makes TypeID equality mean type equality.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	builtins Builtins
}

// NewInterner constructs an interner seeded with built-in primitives.
// Slot 0 stays the invalid descriptor so NoTypeID never resolves.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]TypeID, 32),
	}
	in.types = append(in.types, Type{Kind: KindInvalid})
	in.builtins.Invalid = NoTypeID
	in.builtins.Unit = in.Intern(Type{Kind: KindUnit})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Int = in.Intern(MakeInt(WidthAny))
	in.builtins.Uint = in.Intern(MakeUint(WidthAny))
	in.builtins.Float = in.Intern(MakeFloat(WidthAny))
	in.builtins.String = in.Intern(Type{Kind: KindString})
	return in
}

// Builtins returns TypeIDs for primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := makeTypeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	in.index[key] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	t, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return t
}

// AsReference unwraps exactly one reference layer: for &T it returns T.
func (in *Interner) AsReference(id TypeID) (TypeID, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindRef {
		return NoTypeID, false
	}
	return t.Elem, true
}

// typeKey is the hashable identity of a descriptor; params collapse into a
// string because slices cannot be map keys.
type typeKey struct {
	Kind   Kind
	Width  Width
	Elem   TypeID
	AdtKey string
}

func makeTypeKey(t Type) typeKey {
	key := typeKey{Kind: t.Kind, Width: t.Width, Elem: t.Elem}
	if t.Kind == KindAdt {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d:%d:%d:%d", t.Adt.Kind, t.Adt.Struct, t.Adt.Union, t.Adt.Enum)
		for _, p := range t.Params {
			fmt.Fprintf(&sb, ",%d", p)
		}
		key.AdtKey = sb.String()
	}
	return key
}
