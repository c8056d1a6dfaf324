package diag

import (
	"bytes"
	"testing"
)

func TestConsoleFormatting(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.ReportError(3, "Expect expression.")
	c.ReportRuntimeError(7, "Operands must be numbers.")

	want := "[line 3] error: Expect expression.\n[line 7] runtime error: Operands must be numbers.\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestConsoleFlags(t *testing.T) {
	c := NewConsole(&bytes.Buffer{})
	if c.HadError() || c.HadRuntimeError() {
		t.Fatal("flags should start clear")
	}

	c.ReportError(1, "bad")
	if !c.HadError() {
		t.Error("HadError should be set")
	}
	if c.HadRuntimeError() {
		t.Error("HadRuntimeError should not be set by a static error")
	}

	c.ReportRuntimeError(1, "worse")
	if !c.HadRuntimeError() {
		t.Error("HadRuntimeError should be set")
	}

	c.Reset()
	if c.HadError() || c.HadRuntimeError() {
		t.Error("flags should be clear after reset")
	}
}

func TestCollect(t *testing.T) {
	c := NewCollect()

	c.ReportError(1, "first")
	c.ReportError(2, "second")
	c.ReportRuntimeError(3, "third")

	if len(c.Errors) != 2 || len(c.RuntimeErrors) != 1 {
		t.Fatalf("got %v / %v", c.Errors, c.RuntimeErrors)
	}
	if c.Errors[0] != "[line 1] first" || c.Errors[1] != "[line 2] second" {
		t.Errorf("unexpected errors: %v", c.Errors)
	}
	if c.RuntimeErrors[0] != "[line 3] third" {
		t.Errorf("unexpected runtime errors: %v", c.RuntimeErrors)
	}
	if !c.HadError() || !c.HadRuntimeError() {
		t.Error("flags should be set")
	}

	c.Reset()
	if c.HadError() || c.HadRuntimeError() || len(c.Errors) != 0 {
		t.Error("reset should drop everything")
	}
}
