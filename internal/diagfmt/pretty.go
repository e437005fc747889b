package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"quill/internal/diag"
	"quill/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	codeColor    = color.New(color.Bold)
	noteColor    = color.New(color.FgBlue)
)

// Pretty renders a bag in source order. Call bag.Sort() first; the renderer
// preserves whatever order it is given. Each diagnostic prints as
//
//	<path>:<line>:<col>: <severity> <code>: <message>
//
// followed by the offending line with a caret underline when Context is on,
// then one indented line per note.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	for _, d := range items {
		printHeader(w, d, fs, opts)
		if opts.Context {
			printContext(w, d.Primary, fs, opts)
		}
		for _, n := range d.Notes {
			printNote(w, n, fs, opts)
		}
	}
}

func printHeader(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := severityColor(d.Severity)
	label := strings.ToLower(d.Severity.String())
	if opts.Color {
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			position(d.Primary, fs),
			sev.Sprint(label),
			codeColor.Sprint(d.Code.String()),
			d.Message)
		return
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n", position(d.Primary, fs), label, d.Code, d.Message)
}

func printNote(w io.Writer, n diag.Note, fs *source.FileSet, opts PrettyOpts) {
	if opts.Color {
		fmt.Fprintf(w, "  %s: %s: %s\n", noteColor.Sprint("note"), position(n.Span, fs), n.Msg)
		return
	}
	fmt.Fprintf(w, "  note: %s: %s\n", position(n.Span, fs), n.Msg)
}

// printContext shows the first line the span touches with a caret marker.
func printContext(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(span.File)
	if f == nil || int(span.Start) > len(f.Content) {
		return
	}
	start, _ := fs.Resolve(span)

	lineStart := int(span.Start)
	for lineStart > 0 && f.Content[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := int(span.Start)
	for lineEnd < len(f.Content) && f.Content[lineEnd] != '\n' {
		lineEnd++
	}
	line := string(f.Content[lineStart:lineEnd])

	markerLen := int(span.End) - int(span.Start)
	if avail := lineEnd - int(span.Start); markerLen > avail {
		markerLen = avail
	}
	if markerLen < 1 {
		markerLen = 1
	}
	marker := "^" + strings.Repeat("~", markerLen-1)
	if opts.Color {
		marker = errorColor.Sprint(marker)
	}

	prefix := fmt.Sprintf("  %d | ", start.Line)
	fmt.Fprintf(w, "%s%s\n", prefix, line)
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", len(prefix)+int(start.Col)-1), marker)
}

func position(span source.Span, fs *source.FileSet) string {
	f := fs.Get(span.File)
	if f == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", f.Path, start.Line, start.Col)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}
