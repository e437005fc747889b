package hir

import "quill/internal/adt"

// ExprKind enumerates body expression kinds. The set is closed; consumers
// switch on it exhaustively.
type ExprKind uint8

const (
	// ExprMissing stands in for expressions lowering could not produce.
	ExprMissing ExprKind = iota
	// ExprLiteral is any literal value.
	ExprLiteral
	// ExprPath is a reference to a named value.
	ExprPath
	// ExprCall is a function or method call.
	ExprCall
	// ExprRecordLit constructs a record/struct/enum-variant value.
	ExprRecordLit
	// ExprMatch scrutinizes a value against ordered arms.
	ExprMatch
	// ExprBlock is a statement block with an optional tail expression.
	ExprBlock
)

func (k ExprKind) String() string {
	switch k {
	case ExprLiteral:
		return "Literal"
	case ExprPath:
		return "Path"
	case ExprCall:
		return "Call"
	case ExprRecordLit:
		return "RecordLit"
	case ExprMatch:
		return "Match"
	case ExprBlock:
		return "Block"
	}
	return "Missing"
}

// RecordLitField is one `name: expr` entry of a record literal.
type RecordLitField struct {
	Name adt.Name
	Expr ExprID
}

// MatchArm is one `pat => expr` arm.
type MatchArm struct {
	Pat  PatID
	Expr ExprID
}

// Expr is one body expression. A kind tag plus the union of per-kind
// payloads, in the flat style the rest of the lowering layers use.
type Expr struct {
	Kind ExprKind

	// ExprRecordLit
	Fields []RecordLitField
	Spread ExprID // NoExprID when the literal has no `..rest`

	// ExprMatch
	Scrutinee ExprID
	Arms      []MatchArm

	// ExprBlock
	Stmts []ExprID
	Tail  ExprID // NoExprID when the block ends in a statement

	// ExprCall
	Callee ExprID
	Args   []ExprID
}

// PatKind enumerates body pattern kinds.
type PatKind uint8

const (
	// PatMissing stands in for patterns lowering could not produce.
	PatMissing PatKind = iota
	// PatWild is `_`.
	PatWild
	// PatBind binds the scrutinee to a name.
	PatBind
	// PatLiteralBool matches `true` or `false`.
	PatLiteralBool
	// PatLiteralInt matches an integer literal.
	PatLiteralInt
	// PatRecord destructures a record value by field names.
	PatRecord
)

// RecordFieldPat is one `name: pat` entry of a record pattern.
type RecordFieldPat struct {
	Name adt.Name
	Pat  PatID
}

// Pat is one body pattern.
type Pat struct {
	Kind PatKind

	Name adt.Name // PatBind

	BoolValue bool  // PatLiteralBool
	IntValue  int64 // PatLiteralInt

	Args []RecordFieldPat // PatRecord
}
