// Package diagfmt renders sorted diagnostic bags for humans (pretty, with
// source context) and machines (JSON).
package diagfmt

// PrettyOpts controls the human-readable renderer.
type PrettyOpts struct {
	// Color enables ANSI styling of severities and underlines.
	Color bool
	// Context enables printing the offending source line with a caret
	// underline beneath the span.
	Context bool
	// Max caps the number of rendered diagnostics; 0 means all.
	Max int
}

// JSONOpts controls the machine-readable renderer.
type JSONOpts struct {
	// IncludePositions adds resolved line/column pairs next to byte offsets.
	IncludePositions bool
	// IncludeNotes carries secondary notes through to the output.
	IncludeNotes bool
	// Max caps the number of emitted diagnostics; 0 means all.
	Max int
}
