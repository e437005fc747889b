package db

import (
	"quill/internal/adt"
	"quill/internal/hir"
)

// Resolver resolves well-known dotted paths in the scope of one function.
// Satisfies the validator's resolver contract.
type Resolver struct {
	db *DB
	fn hir.FuncID
}

// ResolverFor scopes resolution to fn.
func (d *DB) ResolverFor(fn hir.FuncID) Resolver {
	return Resolver{db: d, fn: fn}
}

// ResolveKnownEnum resolves path unless the function's scope shadows it.
func (r Resolver) ResolveKnownEnum(path string) (adt.EnumID, bool) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	if r.db.shadowed[r.fn][path] {
		return adt.NoEnumID, false
	}
	id, ok := r.db.knownEnums[path]
	return id, ok
}
