/*
File   : aoi/internal/interp/eval_arithmetic.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"

	"github.com/akashmaji946/aoi/internal/ast"
	"github.com/akashmaji946/aoi/internal/object"
	"github.com/akashmaji946/aoi/internal/token"
)

// evalBinary implements the arithmetic and comparison operators of
// spec.md §4.E.
func (e *Evaluator) evalBinary(ex *ast.Binary) (object.Value, error) {
	left, err := e.evalExpr(ex.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Op.Kind {
	case token.PLUS:
		return evalPlus(left, right)
	case token.MINUS:
		return numericBinary(left, right, func(a, b float64) float64 { return a - b })
	case token.STAR:
		return numericBinary(left, right, func(a, b float64) float64 { return a * b })
	case token.SLASH:
		rn, ok := right.(*object.Number)
		if !ok {
			return nil, fmt.Errorf("Operands must be numbers.")
		}
		if rn.Value == 0 {
			return nil, fmt.Errorf("Division by zero.")
		}
		ln, ok := left.(*object.Number)
		if !ok {
			return nil, fmt.Errorf("Operands must be numbers.")
		}
		return &object.Number{Value: ln.Value / rn.Value}, nil
	case token.EQUAL_EQUAL:
		eq, err := valuesEqual(left, right)
		if err != nil {
			return nil, err
		}
		return &object.Boolean{Value: eq}, nil
	case token.BANG_EQUAL:
		eq, err := valuesEqual(left, right)
		if err != nil {
			return nil, err
		}
		return &object.Boolean{Value: !eq}, nil
	case token.GREATER:
		return comparisonBinary(left, right, func(a, b float64) bool { return a > b })
	case token.GREATER_EQUAL:
		return comparisonBinary(left, right, func(a, b float64) bool { return a >= b })
	case token.LESS:
		return comparisonBinary(left, right, func(a, b float64) bool { return a < b })
	case token.LESS_EQUAL:
		return comparisonBinary(left, right, func(a, b float64) bool { return a <= b })
	}

	return nil, fmt.Errorf("unknown binary operator %s", ex.Op.Lexeme)
}

// evalPlus implements the three-way overload of `+` (spec.md §4.E):
// number+number sums, string+string concatenates, and string+anything
// (either order) stringifies the non-string side and concatenates.
func evalPlus(left, right object.Value) (object.Value, error) {
	ln, lok := left.(*object.Number)
	rn, rok := right.(*object.Number)
	if lok && rok {
		return &object.Number{Value: ln.Value + rn.Value}, nil
	}

	ls, lIsStr := left.(*object.String)
	rs, rIsStr := right.(*object.String)
	if lIsStr && rIsStr {
		return &object.String{Value: ls.Value + rs.Value}, nil
	}
	if lIsStr {
		return &object.String{Value: ls.Value + right.String()}, nil
	}
	if rIsStr {
		return &object.String{Value: left.String() + rs.Value}, nil
	}

	return nil, fmt.Errorf("Operands must be two numbers or include a string.")
}

func numericBinary(left, right object.Value, op func(a, b float64) float64) (object.Value, error) {
	ln, lok := left.(*object.Number)
	rn, rok := right.(*object.Number)
	if !lok || !rok {
		return nil, fmt.Errorf("Operands must be numbers.")
	}
	return &object.Number{Value: op(ln.Value, rn.Value)}, nil
}

func comparisonBinary(left, right object.Value, op func(a, b float64) bool) (object.Value, error) {
	ln, lok := left.(*object.Number)
	rn, rok := right.(*object.Number)
	if !lok || !rok {
		return nil, fmt.Errorf("Operands must be numbers.")
	}
	return &object.Boolean{Value: op(ln.Value, rn.Value)}, nil
}

// valuesEqual implements `==`/`!=`: numbers compare by value against
// numbers, strings against strings; any other pairing (including a
// cross-type comparison) is a RuntimeError, per spec.md §4.E.
func valuesEqual(left, right object.Value) (bool, error) {
	if ln, ok := left.(*object.Number); ok {
		if rn, ok := right.(*object.Number); ok {
			return ln.Value == rn.Value, nil
		}
		return false, fmt.Errorf("Operands must be two numbers or two strings.")
	}
	if ls, ok := left.(*object.String); ok {
		if rs, ok := right.(*object.String); ok {
			return ls.Value == rs.Value, nil
		}
		return false, fmt.Errorf("Operands must be two numbers or two strings.")
	}
	return false, fmt.Errorf("Operands must be two numbers or two strings.")
}
