/*
File   : aoi/internal/interp/evaluator.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/

// Package interp walks the ast.Stmt/ast.Expr trees produced by
// internal/parser, threading a chain of internal/environment scopes and
// accumulating printed output, per spec.md §4.E.
//
// Errors are returned as plain Go errors at every call site — no panic/
// recover is used for RuntimeError, unlike control flow for `return`,
// which needs to unwind past an arbitrary number of intervening
// statements and therefore travels as an explicit signal value rather
// than as Go's own error type (see controlResult in eval_controls.go).
package interp

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/aoi/internal/ast"
	"github.com/akashmaji946/aoi/internal/environment"
)

// Evaluator holds everything one `interpret` call needs: the active
// environment, the append-only output buffer (spec.md invariant 5), and
// the input reader `scan` reads from.
type Evaluator struct {
	Env    *environment.Environment
	output strings.Builder
	in     *bufio.Reader
}

// New creates an Evaluator with a fresh global environment, reading
// `scan` input from os.Stdin.
func New() *Evaluator {
	return &Evaluator{
		Env: environment.New(nil),
		in:  bufio.NewReader(os.Stdin),
	}
}

// SetInput redirects the source `scan` reads lines from, in place of the
// process's real stdin.
func (e *Evaluator) SetInput(r io.Reader) {
	e.in = bufio.NewReader(r)
}

// Output returns everything written to the buffer so far.
func (e *Evaluator) Output() string {
	return e.output.String()
}

// Interpret executes statements in source order against e.Env, returning
// the accumulated output buffer. A RuntimeError in one top-level
// statement is appended as a `Runtime error: …` line (spec.md §7) and
// execution proceeds with the next statement; it never aborts the whole
// run.
func (e *Evaluator) Interpret(statements []ast.Stmt) string {
	for _, stmt := range statements {
		cr, err := e.execStmt(stmt)
		if err != nil {
			e.output.WriteString("Runtime error: " + err.Error() + "\n")
			continue
		}
		if cr != nil && cr.returning {
			// `return` is only meaningful inside a function activation
			// (spec.md §4.E); reaching the top level is itself an error.
			e.output.WriteString("Runtime error: Cannot return from top-level code.\n")
		}
	}
	return e.output.String()
}
