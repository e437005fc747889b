package diag

import (
	"testing"

	"quill/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	sp := source.Span{File: 1, Start: 0, End: 1}
	if !b.Add(NewError(SemaMissingFields, sp, "one")) {
		t.Fatal("first add rejected")
	}
	if !b.Add(NewError(SemaMissingFields, sp, "two")) {
		t.Fatal("second add rejected")
	}
	if b.Add(NewError(SemaMissingFields, sp, "three")) {
		t.Fatal("bag over limit accepted a diagnostic")
	}
	if b.Len() != 2 {
		t.Fatalf("len = %d, want 2", b.Len())
	}
}

func TestBagSortDeterministic(t *testing.T) {
	b := NewBag(8)
	b.Add(New(SevWarning, SemaMissingOkWrap, source.Span{File: 2, Start: 5, End: 6}, "late"))
	b.Add(NewError(SemaMissingFields, source.Span{File: 1, Start: 9, End: 12}, "mid"))
	b.Add(NewError(SemaMissingMatchArms, source.Span{File: 1, Start: 3, End: 20}, "early"))
	b.Sort()

	items := b.Items()
	if items[0].Message != "early" || items[1].Message != "mid" || items[2].Message != "late" {
		t.Fatalf("unexpected order: %q %q %q", items[0].Message, items[1].Message, items[2].Message)
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(4)
	sp := source.Span{File: 1, Start: 0, End: 4}
	b.Add(NewError(SemaMissingFields, sp, "dup"))
	b.Add(NewError(SemaMissingFields, sp, "dup"))
	b.Add(NewError(SemaMissingMatchArms, sp, "kept"))
	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("len after dedup = %d, want 2", b.Len())
	}
}
