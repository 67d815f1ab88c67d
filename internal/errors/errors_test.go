package errors

import (
	"strings"
	"testing"

	"github.com/cwbudde/cmm/internal/token"
)

func TestReporterFatalRaisesHadError(t *testing.T) {
	r := NewReporter("", "")
	if r.HadError() {
		t.Fatal("a fresh Reporter must not have an error")
	}
	r.Fatal(token.Position{Line: 3, Column: 5}, "Type mismatch")
	if !r.HadError() {
		t.Error("Fatal must raise HadError")
	}
}

func TestReporterWarnDoesNotRaiseHadError(t *testing.T) {
	r := NewReporter("", "")
	// "Unused variable" is the actual hint internal/semantic emits under
	// --hints normal/pedantic (see semantic.checkUnused).
	r.Warn(token.Position{Line: 1, Column: 1}, "Unused variable")
	if r.HadError() {
		t.Error("Warn must not raise HadError")
	}
}

func TestMessagesPreserveEmissionOrder(t *testing.T) {
	r := NewReporter("", "")
	r.Fatal(token.Position{Line: 1, Column: 1}, "Undeclared identifier")
	r.Fatal(token.Position{Line: 2, Column: 3}, "Type mismatch")

	got := r.Messages()
	want := []string{
		"1:1 ***ERROR*** Undeclared identifier",
		"2:3 ***ERROR*** Type mismatch",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d messages, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFormatIncludesSourceLine(t *testing.T) {
	src := "int x;\nx = true;\n"
	r := NewReporter(src, "test.cmm")
	r.Fatal(token.Position{Line: 2, Column: 1}, "Type mismatch")

	out := r.Format()
	if !strings.Contains(out, "x = true;") {
		t.Errorf("Format() should include the offending source line, got: %q", out)
	}
	if !strings.Contains(out, "***ERROR*** Type mismatch") {
		t.Errorf("Format() should include the diagnostic text, got: %q", out)
	}
}
