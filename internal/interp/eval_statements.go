/*
File   : aoi/internal/interp/eval_statements.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/aoi/internal/ast"
	"github.com/akashmaji946/aoi/internal/environment"
	"github.com/akashmaji946/aoi/internal/object"
)

// execStmt executes one statement, returning a non-nil controlResult
// only when a `return` is unwinding through it.
func (e *Evaluator) execStmt(stmt ast.Stmt) (*controlResult, error) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := e.evalExpr(s.Expr)
		return nil, err

	case *ast.Print:
		v, err := e.evalExpr(s.Expr)
		if err != nil {
			return nil, err
		}
		e.output.WriteString(v.String() + "\n")
		return nil, nil

	case *ast.Var:
		var value object.Value = object.NilValue
		if s.Init != nil {
			v, err := e.evalExpr(s.Init)
			if err != nil {
				return nil, err
			}
			value = v
		}
		e.Env.Define(s.Name.Lexeme, value)
		return nil, nil

	case *ast.Block:
		return e.execBlock(s.Statements, environment.New(e.Env))

	case *ast.If:
		return e.execIf(s)

	case *ast.While:
		return e.execWhile(s)

	case *ast.Function:
		params := make([]string, len(s.Params))
		for i, p := range s.Params {
			params[i] = p.Lexeme
		}
		fn := &environment.Function{
			Name:    s.Name.Lexeme,
			Params:  params,
			Body:    s.Body,
			Closure: e.Env, // shared, not copied — spec.md closure-capture law
		}
		e.Env.Define(s.Name.Lexeme, fn)
		return nil, nil

	case *ast.Return:
		var value object.Value = object.NilValue
		if s.Value != nil {
			v, err := e.evalExpr(s.Value)
			if err != nil {
				return nil, err
			}
			value = v
		}
		return &controlResult{returning: true, value: value}, nil

	case *ast.Input:
		return nil, e.execInput(s)
	}

	return nil, fmt.Errorf("unknown statement node %T", stmt)
}

// execBlock runs statements in a fresh child environment, restoring the
// caller's environment on every exit path — normal completion, an error,
// or a `return` unwinding through — per spec.md §4.E.
func (e *Evaluator) execBlock(statements []ast.Stmt, blockEnv *environment.Environment) (*controlResult, error) {
	previous := e.Env
	e.Env = blockEnv
	defer func() { e.Env = previous }()

	for _, stmt := range statements {
		cr, err := e.execStmt(stmt)
		if err != nil {
			return nil, err
		}
		if cr != nil {
			return cr, nil
		}
	}
	return nil, nil
}

func (e *Evaluator) execIf(s *ast.If) (*controlResult, error) {
	cond, err := e.evalExpr(s.Cond)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(*object.Boolean)
	if !ok {
		return nil, fmt.Errorf("Condition must be a boolean.")
	}
	if b.Value {
		return e.execStmt(s.Then)
	}
	if s.Else != nil {
		return e.execStmt(s.Else)
	}
	return nil, nil
}

func (e *Evaluator) execWhile(s *ast.While) (*controlResult, error) {
	for {
		cond, err := e.evalExpr(s.Cond)
		if err != nil {
			return nil, err
		}
		if !truthy(cond) {
			return nil, nil
		}
		cr, err := e.execStmt(s.Body)
		if err != nil {
			return nil, err
		}
		if cr != nil {
			return cr, nil
		}
	}
}

// execInput reads one line from stdin, trims it, and tries a float parse
// before falling back to the raw string — spec.md §4.E's `scan`
// semantics. The target must already be declared; `scan` assigns, it
// never declares.
func (e *Evaluator) execInput(s *ast.Input) error {
	line, _ := e.in.ReadString('\n')
	line = strings.TrimSpace(line)

	var value object.Value
	if f, err := strconv.ParseFloat(line, 64); err == nil {
		value = &object.Number{Value: f}
	} else {
		value = &object.String{Value: line}
	}

	return e.Env.Assign(s.Name.Lexeme, value)
}

// truthy implements spec.md §4.E's permissive truthiness rule, used by
// `while`/`for`, logical operators, and the if-expression — but
// deliberately NOT by the `if` statement, which requires a strict boolean
// (see execIf), nor by unary `!`, which yields false for any non-boolean
// (see evalUnary).
func truthy(v object.Value) bool {
	switch val := v.(type) {
	case *object.Boolean:
		return val.Value
	case *object.Number:
		return val.Value != 0
	case *object.String:
		return val.Value != ""
	default:
		return false
	}
}
