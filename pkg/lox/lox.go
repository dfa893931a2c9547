// Package lox wires the front-end pipeline together: scan, parse, and
// interpret one source text, reporting diagnostics and an execution status
// the host can map to an exit code.
package lox

import (
	"fmt"
	"io"

	"github.com/lemonberrylabs/golox/pkg/parser"
	"github.com/lemonberrylabs/golox/pkg/runtime"
	"github.com/lemonberrylabs/golox/pkg/scanner"
)

// Status is the outcome of one run.
type Status int

const (
	StatusOK Status = iota
	StatusSyntaxError
	StatusRuntimeError
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSyntaxError:
		return "syntax_error"
	case StatusRuntimeError:
		return "runtime_error"
	default:
		return "unknown"
	}
}

// Runner runs Lox source texts against a persistent interpreter. A REPL
// host calls Run once per line and globals survive between calls; a file
// host calls it once.
type Runner struct {
	interp *runtime.Interpreter
	errOut io.Writer
}

// NewRunner creates a runner. Ordinary print output goes to out and
// diagnostics to errOut; additional options configure the interpreter.
func NewRunner(out, errOut io.Writer, opts ...runtime.Option) *Runner {
	opts = append([]runtime.Option{runtime.WithOutput(out)}, opts...)
	return &Runner{
		interp: runtime.New(opts...),
		errOut: errOut,
	}
}

// Run executes one source text. Lexical and syntax errors are collected
// across the whole input and reported together; if any exist, evaluation
// does not begin. A runtime error aborts evaluation at the point of error
// and is reported with its source line; earlier side effects stand.
func (r *Runner) Run(source string) Status {
	tokens, scanErrs := scanner.New(source).Scan()
	statements, parseErrs := parser.New(tokens).Parse()

	if len(scanErrs) > 0 || len(parseErrs) > 0 {
		for _, e := range scanErrs {
			fmt.Fprintln(r.errOut, e.Error())
		}
		for _, e := range parseErrs {
			fmt.Fprintln(r.errOut, e.Error())
		}
		return StatusSyntaxError
	}

	if err := r.interp.Interpret(statements); err != nil {
		fmt.Fprintf(r.errOut, "%s\n[line %d]\n", err.Message, err.Line)
		return StatusRuntimeError
	}
	return StatusOK
}
