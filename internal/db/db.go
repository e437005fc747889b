// Package db is the definition database: it hands out stable definition
// ids, memoizes lowered semantic models per snapshot, and rebuilds source
// maps on demand. Models are superseded, never mutated — a changed
// declaration gets a fresh snapshot, not an in-place update. Reads are safe
// from any number of goroutines.
package db

import (
	"sort"
	"sync"

	"quill/internal/adt"
	"quill/internal/arena"
	"quill/internal/hir"
	"quill/internal/infer"
	"quill/internal/source"
	"quill/internal/syntax"
	"quill/internal/types"
)

// Function bundles everything the validator consumes for one body.
type Function struct {
	Name   string
	Body   *hir.Body
	SrcMap *hir.SourceMap
	Infer  *infer.Result
}

// DB is one snapshot's definition database.
type DB struct {
	names *source.Interner
	types *types.Interner

	mu      sync.RWMutex
	structs map[adt.StructID]*syntax.StructDecl
	unions  map[adt.UnionID]*syntax.UnionDecl
	enums   map[adt.EnumID]*syntax.EnumDecl

	structData map[adt.StructID]*adt.StructData
	unionData  map[adt.UnionID]*adt.StructData
	enumData   map[adt.EnumID]*adt.EnumData

	funcs map[hir.FuncID]*Function

	knownEnums map[string]adt.EnumID
	shadowed   map[hir.FuncID]map[string]bool

	nextStruct adt.StructID
	nextUnion  adt.UnionID
	nextEnum   adt.EnumID
	nextFunc   hir.FuncID

	cache *DiskCache
}

func New(names *source.Interner, tys *types.Interner) *DB {
	return &DB{
		names:      names,
		types:      tys,
		structs:    make(map[adt.StructID]*syntax.StructDecl),
		unions:     make(map[adt.UnionID]*syntax.UnionDecl),
		enums:      make(map[adt.EnumID]*syntax.EnumDecl),
		structData: make(map[adt.StructID]*adt.StructData),
		unionData:  make(map[adt.UnionID]*adt.StructData),
		enumData:   make(map[adt.EnumID]*adt.EnumData),
		funcs:      make(map[hir.FuncID]*Function),
		knownEnums: make(map[string]adt.EnumID),
		shadowed:   make(map[hir.FuncID]map[string]bool),
	}
}

// SetDiskCache attaches a cross-process cache consulted by the data
// queries. Optional.
func (d *DB) SetDiskCache(c *DiskCache) {
	d.cache = c
}

// Names returns the snapshot's string interner.
func (d *DB) Names() *source.Interner {
	return d.names
}

// Types returns the snapshot's type interner.
func (d *DB) Types() *types.Interner {
	return d.types
}

// Registration, played the role of by the surrounding name-resolution
// layer: each declaration gets a dense stable id.

func (d *DB) AddStruct(decl *syntax.StructDecl) adt.StructID {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextStruct++
	d.structs[d.nextStruct] = decl
	return d.nextStruct
}

func (d *DB) AddUnion(decl *syntax.UnionDecl) adt.UnionID {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextUnion++
	d.unions[d.nextUnion] = decl
	return d.nextUnion
}

func (d *DB) AddEnum(decl *syntax.EnumDecl) adt.EnumID {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextEnum++
	d.enums[d.nextEnum] = decl
	return d.nextEnum
}

func (d *DB) AddFunction(fn *Function) hir.FuncID {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextFunc++
	d.funcs[d.nextFunc] = fn
	return d.nextFunc
}

// DefineKnownEnum binds a well-known dotted path to an enum definition.
func (d *DB) DefineKnownEnum(path string, id adt.EnumID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.knownEnums[path] = id
}

// ShadowKnownName marks path as shadowed inside one function's scope, so
// resolution fails there.
func (d *DB) ShadowKnownName(fn hir.FuncID, path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shadowed[fn] == nil {
		d.shadowed[fn] = make(map[string]bool)
	}
	d.shadowed[fn][path] = true
}

// Data queries, memoized per definition id. The first request lowers; all
// later requests share the immutable result.

func (d *DB) StructData(id adt.StructID) *adt.StructData {
	d.mu.RLock()
	if data, ok := d.structData[id]; ok {
		d.mu.RUnlock()
		return data
	}
	decl := d.structs[id]
	d.mu.RUnlock()
	if decl == nil {
		return nil
	}

	data := d.cachedStruct(structDigest(decl, d.names), func() *adt.StructData {
		return adt.LowerStruct(decl)
	})

	d.mu.Lock()
	defer d.mu.Unlock()
	if prior, ok := d.structData[id]; ok {
		return prior
	}
	d.structData[id] = data
	return data
}

func (d *DB) UnionData(id adt.UnionID) *adt.StructData {
	d.mu.RLock()
	if data, ok := d.unionData[id]; ok {
		d.mu.RUnlock()
		return data
	}
	decl := d.unions[id]
	d.mu.RUnlock()
	if decl == nil {
		return nil
	}

	data := d.cachedStruct(unionDigest(decl, d.names), func() *adt.StructData {
		return adt.LowerUnion(decl)
	})

	d.mu.Lock()
	defer d.mu.Unlock()
	if prior, ok := d.unionData[id]; ok {
		return prior
	}
	d.unionData[id] = data
	return data
}

func (d *DB) EnumData(id adt.EnumID) *adt.EnumData {
	d.mu.RLock()
	if data, ok := d.enumData[id]; ok {
		d.mu.RUnlock()
		return data
	}
	decl := d.enums[id]
	d.mu.RUnlock()
	if decl == nil {
		return nil
	}

	data := d.cachedEnum(enumDigest(decl, d.names), func() *adt.EnumData {
		return adt.LowerEnum(decl)
	})

	d.mu.Lock()
	defer d.mu.Unlock()
	if prior, ok := d.enumData[id]; ok {
		return prior
	}
	d.enumData[id] = data
	return data
}

// VariantData resolves any variant id to its shape. Returns nil for stale
// ids; callers treat that as an unresolvable fact, not an error.
func (d *DB) VariantData(v adt.VariantID) *adt.VariantData {
	switch v.Kind {
	case adt.VariantOfStruct:
		if data := d.StructData(v.Struct); data != nil {
			return data.VariantData
		}
	case adt.VariantOfUnion:
		if data := d.UnionData(v.Union); data != nil {
			return data.VariantData
		}
	case adt.VariantOfEnum:
		if data := d.EnumData(v.Enum); data != nil {
			return data.VariantData(v.Local)
		}
	}
	return nil
}

// Source-map queries, rebuilt on demand from the same deterministic walk
// that produced the semantic arenas.

func (d *DB) StructFieldSources(id adt.StructID) *arena.Map[syntax.FieldSrc] {
	d.mu.RLock()
	decl := d.structs[id]
	d.mu.RUnlock()
	if decl == nil {
		return &arena.Map[syntax.FieldSrc]{}
	}
	return adt.StructFieldSources(decl)
}

func (d *DB) UnionFieldSources(id adt.UnionID) *arena.Map[syntax.FieldSrc] {
	d.mu.RLock()
	decl := d.unions[id]
	d.mu.RUnlock()
	if decl == nil {
		return &arena.Map[syntax.FieldSrc]{}
	}
	return adt.UnionFieldSources(decl)
}

func (d *DB) EnumVariantSources(id adt.EnumID) *arena.Map[syntax.EnumVariant] {
	d.mu.RLock()
	decl := d.enums[id]
	d.mu.RUnlock()
	if decl == nil {
		return &arena.Map[syntax.EnumVariant]{}
	}
	return adt.EnumVariantSources(decl)
}

// VariantFieldSources dispatches to the right per-definition walk.
func (d *DB) VariantFieldSources(v adt.VariantID) *arena.Map[syntax.FieldSrc] {
	d.mu.RLock()
	defer d.mu.RUnlock()
	switch v.Kind {
	case adt.VariantOfStruct:
		if decl := d.structs[v.Struct]; decl != nil {
			return adt.StructFieldSources(decl)
		}
	case adt.VariantOfUnion:
		if decl := d.unions[v.Union]; decl != nil {
			return adt.UnionFieldSources(decl)
		}
	case adt.VariantOfEnum:
		if decl := d.enums[v.Enum]; decl != nil {
			return adt.EnumVariantFieldSources(decl, v.Local)
		}
	}
	return &arena.Map[syntax.FieldSrc]{}
}

// Function returns one registered function.
func (d *DB) Function(id hir.FuncID) *Function {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.funcs[id]
}

// Functions lists registered function ids in ascending order.
func (d *DB) Functions() []hir.FuncID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ids := make([]hir.FuncID, 0, len(d.funcs))
	for id := range d.funcs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
