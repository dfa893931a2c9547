package lox

import (
	"bytes"
	"strings"
	"testing"
)

func newTestRunner() (*Runner, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewRunner(&out, &errOut), &out, &errOut
}

func TestRunOK(t *testing.T) {
	runner, out, errOut := newTestRunner()

	status := runner.Run(`print "hello";`)
	if status != StatusOK {
		t.Fatalf("status = %s, want ok", status)
	}
	if out.String() != "hello\n" {
		t.Errorf("out = %q", out.String())
	}
	if errOut.Len() != 0 {
		t.Errorf("errOut should be empty, got %q", errOut.String())
	}
}

func TestRunSyntaxError(t *testing.T) {
	runner, out, errOut := newTestRunner()

	status := runner.Run("print 1")
	if status != StatusSyntaxError {
		t.Fatalf("status = %s, want syntax_error", status)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should execute, got output %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[line 1] Error at end:") {
		t.Errorf("diagnostic %q should carry line and position", errOut.String())
	}
}

func TestRunReportsAllStaticErrors(t *testing.T) {
	runner, _, errOut := newTestRunner()

	// One scan error and one parse error in the same input.
	status := runner.Run("var x = 1 @;\nvar y = ;")
	if status != StatusSyntaxError {
		t.Fatalf("status = %s, want syntax_error", status)
	}
	lines := strings.Split(strings.TrimRight(errOut.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %q", len(lines), errOut.String())
	}
	if !strings.Contains(lines[0], "[line 1]") || !strings.Contains(lines[0], "Unexpected character.") {
		t.Errorf("first diagnostic %q", lines[0])
	}
	if !strings.Contains(lines[1], "[line 2]") {
		t.Errorf("second diagnostic %q", lines[1])
	}
}

func TestRunRuntimeError(t *testing.T) {
	runner, out, errOut := newTestRunner()

	status := runner.Run("print \"first\";\nprint 1 + nil;")
	if status != StatusRuntimeError {
		t.Fatalf("status = %s, want runtime_error", status)
	}
	// Output before the error stands.
	if out.String() != "first\n" {
		t.Errorf("out = %q", out.String())
	}
	want := "Operands must be two numbers or two strings.\n[line 2]\n"
	if errOut.String() != want {
		t.Errorf("errOut = %q, want %q", errOut.String(), want)
	}
}

func TestGlobalsPersistAcrossRuns(t *testing.T) {
	runner, out, _ := newTestRunner()

	// A REPL session: each line is a separate Run on the same runner.
	for _, line := range []string{
		"var count = 0;",
		"fun bump() { count = count + 1; return count; }",
		"print bump();",
		"print bump();",
	} {
		if status := runner.Run(line); status != StatusOK {
			t.Fatalf("line %q: status = %s", line, status)
		}
	}
	if out.String() != "1\n2\n" {
		t.Errorf("out = %q, want %q", out.String(), "1\n2\n")
	}
}

func TestFailedRunDoesNotPoisonSession(t *testing.T) {
	runner, out, _ := newTestRunner()

	runner.Run("var x = 10;")
	if status := runner.Run("print missing;"); status != StatusRuntimeError {
		t.Fatalf("expected a runtime error")
	}
	if status := runner.Run("print x;"); status != StatusOK {
		t.Fatalf("the session should still work after an error")
	}
	if out.String() != "10\n" {
		t.Errorf("out = %q", out.String())
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusOK, "ok"},
		{StatusSyntaxError, "syntax_error"},
		{StatusRuntimeError, "runtime_error"},
		{Status(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("%d: got %q, want %q", tt.status, got, tt.want)
		}
	}
}
