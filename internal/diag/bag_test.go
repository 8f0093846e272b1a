package diag

import (
	"testing"

	"volta/internal/source"
)

func mk(buf source.BufferID, start, end uint32, sev Severity, code Code) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  source.Range{Buffer: buf, Start: start, End: end},
	}
}

func TestBag_AddAndCap(t *testing.T) {
	b := NewBag(2)
	if b.Cap() != 2 {
		t.Fatalf("Cap() = %d", b.Cap())
	}
	if !b.Add(mk(1, 0, 1, SevWarning, LexUnknownChar)) {
		t.Fatal("first Add should succeed")
	}
	if !b.Add(mk(1, 2, 3, SevError, SynUnexpectedToken)) {
		t.Fatal("second Add should succeed")
	}
	if b.Add(mk(1, 4, 5, SevError, SynUnexpectedToken)) {
		t.Fatal("Add past the cap should be rejected")
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
}

func TestBag_HasErrors(t *testing.T) {
	b := NewBag(8)
	b.Add(mk(1, 0, 1, SevNote, UnknownCode))
	b.Add(mk(1, 0, 1, SevWarning, LexBadNumber))
	if b.HasErrors() {
		t.Fatal("notes and warnings are not errors")
	}
	b.Add(mk(1, 2, 3, SevError, SynExpectedToken))
	if !b.HasErrors() {
		t.Fatal("error severity should flip HasErrors")
	}
}

func TestBag_Sort(t *testing.T) {
	b := NewBag(8)
	b.Add(mk(2, 0, 1, SevError, SynUnexpectedToken))
	b.Add(mk(1, 5, 6, SevWarning, LexBadNumber))
	b.Add(mk(1, 5, 6, SevError, SynExpectedToken))
	b.Add(mk(1, 0, 1, SevNote, LexInfo))
	b.Sort()

	items := b.Items()
	if items[0].Primary.Start != 0 || items[0].Primary.Buffer != 1 {
		t.Fatalf("items[0] = %+v", items[0])
	}
	// Same position: higher severity first.
	if items[1].Severity != SevError || items[2].Severity != SevWarning {
		t.Fatalf("severity order = %v, %v", items[1].Severity, items[2].Severity)
	}
	if items[3].Primary.Buffer != 2 {
		t.Fatalf("items[3] = %+v", items[3])
	}
}

func TestCode_String(t *testing.T) {
	if got := SynExpectedToken.String(); got != "VLT2002" {
		t.Fatalf("String() = %q", got)
	}
	if got := UnknownCode.String(); got != "VLT0000" {
		t.Fatalf("String() = %q", got)
	}
}
