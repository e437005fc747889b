// Package sema runs diagnostic checks over lowered function bodies using
// the ADT model and per-body inference results. Every check is
// conservative: an unresolved type, variant, name or syntax origin
// suppresses that one diagnostic and nothing else. False positives are
// worse than silence, so each unresolved fact maps to an explicit early
// return.
package sema

import (
	"quill/internal/adt"
	"quill/internal/match"
	"quill/internal/source"
	"quill/internal/types"
)

// ResultPath is the dotted path of the language's two-variant outcome type.
const ResultPath = "std.result.Result"

// DefSource resolves variant ids to their semantic shape. Implemented by
// the definition database.
type DefSource interface {
	VariantData(v adt.VariantID) *adt.VariantData
}

// Resolver resolves well-known dotted type paths in the scope of the
// function under validation. A shadowed or absent name reports false.
type Resolver interface {
	ResolveKnownEnum(path string) (adt.EnumID, bool)
}

// Deps bundles the collaborators a validator run needs.
type Deps struct {
	Defs     DefSource
	Types    *types.Interner
	Resolver Resolver
	Oracle   match.Oracle
	// Names renders field identifiers in diagnostic messages.
	Names *source.Interner
}
