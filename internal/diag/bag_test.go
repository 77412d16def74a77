package diag_test

import (
	"testing"

	"jackal/internal/diag"
)

func mkDiag(path string, line uint32, sev diag.Severity, code diag.Code) diag.Diagnostic {
	return diag.Diagnostic{Severity: sev, Code: code, Path: path, Line: line, Message: "m"}
}

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(2)
	if !bag.Add(mkDiag("a.jack", 1, diag.SevError, diag.LexUnknownToken)) {
		t.Fatal("first Add refused")
	}
	if !bag.Add(mkDiag("a.jack", 2, diag.SevError, diag.LexUnknownToken)) {
		t.Fatal("second Add refused")
	}
	if bag.Add(mkDiag("a.jack", 3, diag.SevError, diag.LexUnknownToken)) {
		t.Fatal("Add over the limit should report false")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(mkDiag("a.jack", 1, diag.SevInfo, diag.LexInfo))
	bag.Add(mkDiag("a.jack", 2, diag.SevWarning, diag.LexInfo))
	if bag.HasErrors() {
		t.Fatal("info and warning are not errors")
	}
	bag.Add(mkDiag("a.jack", 3, diag.SevError, diag.SynExpectedToken))
	if !bag.HasErrors() {
		t.Fatal("error not seen")
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(mkDiag("a.jack", 1, diag.SevError, diag.LexUnknownToken))
	b := diag.NewBag(1)
	b.Add(mkDiag("b.jack", 1, diag.SevError, diag.SynExpectedToken))

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("Len after merge = %d, want 2", a.Len())
	}
}

func TestBagSortOrder(t *testing.T) {
	bag := diag.NewBag(8)
	bag.Add(mkDiag("b.jack", 1, diag.SevError, diag.SynExpectedToken))
	bag.Add(mkDiag("a.jack", 5, diag.SevError, diag.SynExpectedToken))
	bag.Add(mkDiag("a.jack", 2, diag.SevWarning, diag.LexInfo))
	bag.Add(mkDiag("a.jack", 2, diag.SevError, diag.LexUnknownToken))
	bag.Sort()

	items := bag.Items()
	// a.jack before b.jack; within a line, higher severity first.
	if items[0].Path != "a.jack" || items[0].Line != 2 || items[0].Severity != diag.SevError {
		t.Fatalf("item 0 = %+v", items[0])
	}
	if items[1].Severity != diag.SevWarning {
		t.Fatalf("item 1 = %+v", items[1])
	}
	if items[2].Line != 5 {
		t.Fatalf("item 2 = %+v", items[2])
	}
	if items[3].Path != "b.jack" {
		t.Fatalf("item 3 = %+v", items[3])
	}
}

func TestDiagnosticString(t *testing.T) {
	d := mkDiag("Main.jack", 7, diag.SevError, diag.SynExpectedToken)
	d.Message = "in class: expected '}', found end of input"
	want := "Main.jack:7: ERROR SYN2001: in class: expected '}', found end of input"
	if got := d.String(); got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}

	d.Line = 0
	if got := d.String(); got != "Main.jack: ERROR SYN2001: in class: expected '}', found end of input" {
		t.Fatalf("String without line = %q", got)
	}
}
