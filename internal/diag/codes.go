package diag

import "fmt"

// Code identifies one diagnostic kind. The numeric space is blocked by phase
// so codes stay stable as checks are added: 46xx belongs to the expression
// validator.
type Code uint16

const (
	UnknownCode Code = 0

	// Expression validator.
	SemaMissingFields    Code = 4601
	SemaMissingMatchArms Code = 4602
	SemaMissingOkWrap    Code = 4603
)

func (c Code) String() string {
	switch c {
	case UnknownCode:
		return "QL0000"
	case SemaMissingFields:
		return "QL4601"
	case SemaMissingMatchArms:
		return "QL4602"
	case SemaMissingOkWrap:
		return "QL4603"
	default:
		return fmt.Sprintf("QL%04d", uint16(c))
	}
}

// Title returns a short human-readable summary for a code.
func (c Code) Title() string {
	switch c {
	case SemaMissingFields:
		return "missing structure fields"
	case SemaMissingMatchArms:
		return "missing match arms"
	case SemaMissingOkWrap:
		return "tail expression not wrapped in ok"
	default:
		return "unknown diagnostic"
	}
}
