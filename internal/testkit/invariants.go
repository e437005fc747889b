// Package testkit holds invariant checks shared by tests across packages.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"quill/internal/adt"
	"quill/internal/arena"
	"quill/internal/syntax"
)

// CheckFieldSourceAlignment verifies the core arena/source-map contract for
// one lowered field list:
//  1. the field arena and the source map have the same length
//  2. every map entry is a real node of the side matching the shape
//  3. entry i's node is consistent with the arena's i-th semantic value
//     (tuple fields carry positional names in order)
func CheckFieldSourceAlignment(data *adt.VariantData, srcs *arena.Map[syntax.FieldSrc]) error {
	fields := data.Fields()
	if fields.Len() != srcs.Len() {
		return fmt.Errorf("arena has %d fields, source map has %d entries", fields.Len(), srcs.Len())
	}

	for i, f := range fields.Slice() {
		idx, err := safecast.Conv[uint32](i + 1)
		if err != nil {
			return fmt.Errorf("index overflow: %w", err)
		}
		src, ok := srcs.Get(idx)
		if !ok {
			return fmt.Errorf("no source entry for field %d", idx)
		}
		if !src.Ptr().Valid() {
			return fmt.Errorf("source entry %d has no node", idx)
		}
		switch data.Kind() {
		case adt.ShapeTuple:
			if src.Tuple == nil {
				return fmt.Errorf("field %d of a tuple shape maps to a non-tuple node", idx)
			}
			pos, ok := f.Name.TupleIndex()
			if !ok || pos != idx-1 {
				return fmt.Errorf("field %d carries tuple name %v", idx, f.Name)
			}
		case adt.ShapeRecord:
			if src.Record == nil {
				return fmt.Errorf("field %d of a record shape maps to a non-record node", idx)
			}
		case adt.ShapeUnit:
			return fmt.Errorf("unit shape must not have field %d", idx)
		}
	}
	return nil
}
