package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"quill/internal/diag"
)

func TestBuildDiagnosticsOutput(t *testing.T) {
	bag, fs, _ := fixtureBag(t)

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true})
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d", out.Count)
	}

	d := out.Diagnostics[0]
	if d.Code != "QL4601" || d.Severity != "ERROR" {
		t.Fatalf("header = %s %s", d.Severity, d.Code)
	}
	if d.Location.File != "geometry.ql" || d.Location.StartLine != 2 || d.Location.StartCol != 5 {
		t.Fatalf("location = %+v", d.Location)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "field list starts here" {
		t.Fatalf("notes = %+v", d.Notes)
	}
}

func TestJSONRoundTrips(t *testing.T) {
	bag, fs, _ := fixtureBag(t)

	var sb strings.Builder
	if err := JSON(&sb, bag, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}

	var decoded DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Count != 1 || decoded.Diagnostics[0].Message != "missing structure fields: y" {
		t.Fatalf("decoded = %+v", decoded)
	}
	// Notes excluded unless requested.
	if len(decoded.Diagnostics[0].Notes) != 0 {
		t.Fatalf("notes leaked: %+v", decoded.Diagnostics[0].Notes)
	}
}

func TestJSONHonorsMax(t *testing.T) {
	bag, fs, span := fixtureBag(t)
	bag.Add(diag.NewError(diag.SemaMissingMatchArms, span, "missing match arms"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if out.Count != 1 {
		t.Fatalf("max not honored: %+v", out)
	}
}
