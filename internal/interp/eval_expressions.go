/*
File   : aoi/internal/interp/eval_expressions.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"

	"github.com/akashmaji946/aoi/internal/ast"
	"github.com/akashmaji946/aoi/internal/environment"
	"github.com/akashmaji946/aoi/internal/object"
	"github.com/akashmaji946/aoi/internal/token"
)

// evalExpr evaluates expr against the current environment.
func (e *Evaluator) evalExpr(expr ast.Expr) (object.Value, error) {
	switch ex := expr.(type) {
	case *ast.Literal:
		return literalValue(ex.Value), nil

	case *ast.Variable:
		return e.Env.Get(ex.Name.Lexeme)

	case *ast.Grouping:
		return e.evalExpr(ex.Inner)

	case *ast.Unary:
		return e.evalUnary(ex)

	case *ast.Binary:
		return e.evalBinary(ex)

	case *ast.Logical:
		return e.evalLogical(ex)

	case *ast.Assign:
		value, err := e.evalExpr(ex.Value)
		if err != nil {
			return nil, err
		}
		if err := e.Env.Assign(ex.Name.Lexeme, value); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.IfExpr:
		return e.evalIfExpr(ex)

	case *ast.Call:
		return e.evalCall(ex)

	case *ast.Array:
		elements := make([]object.Value, len(ex.Elements))
		for i, el := range ex.Elements {
			v, err := e.evalExpr(el)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return &object.Array{Elements: elements}, nil

	case *ast.Index:
		return e.evalIndex(ex)

	case *ast.IndexAssign:
		return e.evalIndexAssign(ex)
	}

	return nil, fmt.Errorf("unknown expression node %T", expr)
}

func literalValue(v interface{}) object.Value {
	switch val := v.(type) {
	case nil:
		return object.NilValue
	case float64:
		return &object.Number{Value: val}
	case string:
		return &object.String{Value: val}
	case bool:
		return &object.Boolean{Value: val}
	default:
		return object.NilValue
	}
}

func (e *Evaluator) evalUnary(ex *ast.Unary) (object.Value, error) {
	operand, err := e.evalExpr(ex.Operand)
	if err != nil {
		return nil, err
	}
	switch ex.Op.Kind {
	case token.MINUS:
		n, ok := operand.(*object.Number)
		if !ok {
			return nil, fmt.Errorf("Operand must be a number.")
		}
		return &object.Number{Value: -n.Value}, nil
	case token.BANG:
		if b, ok := operand.(*object.Boolean); ok {
			return &object.Boolean{Value: !b.Value}, nil
		}
		// Unary '!' on any non-boolean yields false (spec.md §4.E).
		return &object.Boolean{Value: false}, nil
	}
	return nil, fmt.Errorf("unknown unary operator %s", ex.Op.Lexeme)
}

// evalIfExpr evaluates the value-returning conditional form (spec.md §3);
// unlike the `if` statement it follows permissive truthiness, since it
// has no statement-level strictness requirement of its own.
func (e *Evaluator) evalIfExpr(ex *ast.IfExpr) (object.Value, error) {
	cond, err := e.evalExpr(ex.Cond)
	if err != nil {
		return nil, err
	}
	if truthy(cond) {
		return e.evalExpr(ex.Then)
	}
	if ex.Else != nil {
		return e.evalExpr(ex.Else)
	}
	return object.NilValue, nil
}

func (e *Evaluator) evalLogical(ex *ast.Logical) (object.Value, error) {
	left, err := e.evalExpr(ex.Left)
	if err != nil {
		return nil, err
	}
	// Always yields a boolean, never the operand value — spec.md §4.E's
	// deliberate simplification.
	if ex.Op.Kind == token.OR {
		if truthy(left) {
			return &object.Boolean{Value: true}, nil
		}
		right, err := e.evalExpr(ex.Right)
		if err != nil {
			return nil, err
		}
		return &object.Boolean{Value: truthy(right)}, nil
	}
	// token.AND
	if !truthy(left) {
		return &object.Boolean{Value: false}, nil
	}
	right, err := e.evalExpr(ex.Right)
	if err != nil {
		return nil, err
	}
	return &object.Boolean{Value: truthy(right)}, nil
}

func (e *Evaluator) evalCall(ex *ast.Call) (object.Value, error) {
	callee, err := e.evalExpr(ex.Callee)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*environment.Function)
	if !ok {
		return nil, fmt.Errorf("Can only call functions.")
	}

	args := make([]object.Value, len(ex.Args))
	for i, a := range ex.Args {
		v, err := e.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callEnv := environment.New(fn.Closure)
	// Arity is not enforced (spec.md §4.E step 4 / §9): extra arguments
	// are ignored, missing parameters are simply never defined and will
	// error as undefined if referenced.
	for i, param := range fn.Params {
		if i < len(args) {
			callEnv.Define(param, args[i])
		}
	}

	cr, err := e.execBlock(fn.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if cr != nil && cr.returning {
		return cr.value, nil
	}
	return object.NilValue, nil
}

func (e *Evaluator) evalIndex(ex *ast.Index) (object.Value, error) {
	target, err := e.evalExpr(ex.Target)
	if err != nil {
		return nil, err
	}
	arr, ok := target.(*object.Array)
	if !ok {
		return nil, fmt.Errorf("Can only index arrays.")
	}
	idx, err := e.evalExpr(ex.At)
	if err != nil {
		return nil, err
	}
	i, err := arrayIndex(idx, len(arr.Elements))
	if err != nil {
		return nil, err
	}
	return arr.Elements[i], nil
}

func (e *Evaluator) evalIndexAssign(ex *ast.IndexAssign) (object.Value, error) {
	target, err := e.evalExpr(ex.Target)
	if err != nil {
		return nil, err
	}
	arr, ok := target.(*object.Array)
	if !ok {
		return nil, fmt.Errorf("Can only index arrays.")
	}
	idxVal, err := e.evalExpr(ex.At)
	if err != nil {
		return nil, err
	}
	i, err := arrayIndex(idxVal, len(arr.Elements))
	if err != nil {
		return nil, err
	}
	value, err := e.evalExpr(ex.Value)
	if err != nil {
		return nil, err
	}
	arr.Elements[i] = value
	return value, nil
}

// arrayIndex validates idx as a non-negative number in bounds for a
// sequence of length n, per spec.md §4.E array operations. A fractional
// index is truncated toward zero before the bounds check.
func arrayIndex(idx object.Value, n int) (int, error) {
	num, ok := idx.(*object.Number)
	if !ok || num.Value < 0 {
		return 0, fmt.Errorf("Array index must be a non-negative number.")
	}
	i := int(num.Value)
	if i >= n {
		return 0, fmt.Errorf("Array index out of bounds: %d >= %d", i, n)
	}
	return i, nil
}
