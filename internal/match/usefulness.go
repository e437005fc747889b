// Package match defines the pattern-usefulness contract the exhaustiveness
// check delegates to, plus a deliberately small baseline oracle. A row is
// "useful" against a matrix when some value of the scrutinee type matches
// the row but none of the rows already in the matrix.
//
// The full usefulness algorithm (or-patterns, ranges, nested enum
// constructors with tie-breaks) is outside this core; the baseline answers
// Unknown for every shape it does not model, and the validator maps Unknown
// to silence.
package match

import (
	"quill/internal/hir"
	"quill/internal/infer"
	"quill/internal/types"
)

// Usefulness is the oracle verdict.
type Usefulness uint8

const (
	// Unknown means the oracle does not implement this pattern shape.
	Unknown Usefulness = iota
	Useful
	NotUseful
)

func (u Usefulness) String() string {
	switch u {
	case Useful:
		return "useful"
	case NotUseful:
		return "not useful"
	}
	return "unknown"
}

// Ctx is the immutable context one usefulness query runs in.
type Ctx struct {
	Body      *hir.Body
	Infer     *infer.Result
	Types     *types.Interner
	Scrutinee types.TypeID
}

// PatStack is one matrix row. The head is the pattern under scrutiny;
// deeper slots would hold constructor sub-patterns in a full
// implementation.
type PatStack struct {
	pats []hir.PatID
	wild bool
}

// FromPattern builds a row from one arm pattern.
func FromPattern(pat hir.PatID) PatStack {
	return PatStack{pats: []hir.PatID{pat}}
}

// FromWild builds the synthetic wildcard row used to probe exhaustiveness.
func FromWild() PatStack {
	return PatStack{wild: true}
}

// Head returns the row's first pattern.
func (s PatStack) Head() (hir.PatID, bool) {
	if s.wild || len(s.pats) == 0 {
		return hir.NoPatID, false
	}
	return s.pats[0], true
}

// IsWild reports whether the row is the synthetic wildcard.
func (s PatStack) IsWild() bool {
	return s.wild
}

// Matrix accumulates the rows seen so far, in arm order.
type Matrix struct {
	rows []PatStack
}

func NewMatrix() *Matrix {
	return &Matrix{}
}

// Push appends a row.
func (m *Matrix) Push(row PatStack) {
	m.rows = append(m.rows, row)
}

// Rows returns the accumulated rows. Read-only.
func (m *Matrix) Rows() []PatStack {
	return m.rows
}

// Oracle decides usefulness of one candidate row against a matrix.
type Oracle interface {
	IsUseful(cx *Ctx, matrix *Matrix, candidate PatStack) Usefulness
}
