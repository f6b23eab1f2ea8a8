/*
File   : aoi/internal/interp/evaluator_test.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package interp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/aoi/internal/lexer"
	"github.com/akashmaji946/aoi/internal/parser"
)

// run lexes, parses, and interprets src against a fresh Evaluator,
// mirroring the httpserver/cmd pipeline exactly.
func run(t *testing.T, src string) string {
	t.Helper()
	tokens := lexer.New(src).ScanTokens()
	p := parser.New(tokens)
	stmts := p.Parse()
	if len(p.Errors) > 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors)
	}
	return New().Interpret(stmts)
}

func TestScenario_AdditionPrint(t *testing.T) {
	assert.Equal(t, "3\n", run(t, `write(1+2);`))
}

func TestScenario_StringPlusNumberStringifies(t *testing.T) {
	assert.Equal(t, "hi5\n", run(t, `var a = "hi"; write(a + 5);`))
}

func TestScenario_WhileLoop(t *testing.T) {
	assert.Equal(t, "0\n1\n2\n", run(t, `var i = 0; while (i < 3) { write(i); i = i + 1; }`))
}

func TestScenario_FunctionCall(t *testing.T) {
	assert.Equal(t, "49\n", run(t, `fun sq(x) { return x*x; } write(sq(7));`))
}

func TestScenario_ArrayIndexAssign(t *testing.T) {
	assert.Equal(t, "[10, 99, 30]\n", run(t, `var a = [10, 20, 30]; a[1] = 99; write(a);`))
}

func TestScenario_DivisionByZero(t *testing.T) {
	assert.Equal(t, "Runtime error: Division by zero.\n", run(t, `write(1/0);`))
}

func TestForLoop_ExecutesExactlyNTimes(t *testing.T) {
	out := run(t, `for (var i = 0; i < 5; i = i + 1) { write(i); }`)
	assert.Equal(t, strings.Count(out, "\n"), 5)
}

// Environment shadowing: a block-scoped redeclaration doesn't leak out.
func TestEnvironmentShadowing(t *testing.T) {
	out := run(t, `var x = "A"; { var x = "B"; write(x); } write(x);`)
	assert.Equal(t, "B\nA\n", out)
}

// Closure capture: a function defined inside a block still sees the
// block's bindings after the block exits, as long as the function value
// remains reachable (spec.md §8 property 5).
func TestClosureCapture(t *testing.T) {
	out := run(t, `
		var makeCounter = nil;
		{
			var count = 0;
			fun increment() { count = count + 1; return count; }
			makeCounter = increment;
		}
		write(makeCounter());
		write(makeCounter());
	`)
	assert.Equal(t, "1\n2\n", out)
}

// Short-circuit: in `false and f()`, f is never called — observed here
// via f's side effect (a write) never appearing in the output.
func TestLogicalAnd_ShortCircuits(t *testing.T) {
	out := run(t, `
		fun f() { write("called"); return true; }
		write(false and f());
	`)
	assert.Equal(t, "false\n", out)
}

func TestLogicalOr_ShortCircuits(t *testing.T) {
	out := run(t, `
		fun f() { write("called"); return true; }
		write(true or f());
	`)
	assert.Equal(t, "true\n", out)
}

// If-statement strictness: a non-boolean condition is a RuntimeError,
// unlike while/for, which merely apply truthiness.
func TestIfStatement_RequiresStrictBoolean(t *testing.T) {
	out := run(t, `if (1) { write("nope"); }`)
	assert.Equal(t, "Runtime error: Condition must be a boolean.\n", out)
}

func TestWhileStatement_AcceptsTruthyNonBoolean(t *testing.T) {
	out := run(t, `var i = 2; while (i) { write(i); i = i - 1; }`)
	assert.Equal(t, "2\n1\n", out)
}

// Arity is not enforced: extra arguments are ignored, missing
// parameters remain unbound (spec.md §4.E step 4 / §9).
func TestFunctionCall_ArityNotEnforced(t *testing.T) {
	out := run(t, `fun add(a, b) { return a + b; } write(add(1, 2, 3));`)
	assert.Equal(t, "3\n", out)
}

func TestArrayIndex_OutOfBoundsIsRuntimeError(t *testing.T) {
	out := run(t, `var a = [1, 2]; write(a[5]);`)
	assert.Contains(t, out, "Runtime error: Array index out of bounds")
}

func TestReturnOutsideFunction_IsRuntimeError(t *testing.T) {
	out := run(t, `return 1;`)
	assert.Equal(t, "Runtime error: Cannot return from top-level code.\n", out)
}

func TestRuntimeError_DoesNotAbortSubsequentStatements(t *testing.T) {
	out := run(t, `write(1/0); write(42);`)
	assert.Equal(t, "Runtime error: Division by zero.\n42\n", out)
}
