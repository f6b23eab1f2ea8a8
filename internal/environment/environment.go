/*
File   : aoi/internal/environment/environment.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/

// Package environment implements Aoi's lexical scope chain (spec.md §3) and
// the Function value, which must hold a pointer back into this chain as its
// closure. Modeled on teacher's scope.Scope (chained Bind/LookUp/Assign),
// but WITHOUT scope.Scope.Copy(): a Function's Closure is the very
// environment active at its `fun` declaration, shared by pointer so that
// later mutations of captured variables are visible to the closure —
// spec.md §9's "Environment ownership" redesign note and the closure-
// capture law in §8 (property 5) both require sharing, not copying.
package environment

import (
	"fmt"

	"github.com/akashmaji946/aoi/internal/ast"
	"github.com/akashmaji946/aoi/internal/object"
)

// Environment is a mapping from identifier name to Value, chained to an
// enclosing (lexically outer) Environment. The root global environment has
// a nil Enclosing.
type Environment struct {
	values    map[string]object.Value
	Enclosing *Environment
}

// New creates a fresh Environment enclosed by parent. Pass nil for the
// global scope.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]object.Value), Enclosing: parent}
}

// Define unconditionally binds name to value in this environment,
// shadowing any enclosing binding of the same name without error — per
// spec.md §4.E, redeclaration in the same scope is not an error either.
func (e *Environment) Define(name string, value object.Value) {
	e.values[name] = value
}

// Get walks the enclosing chain looking for name, per spec.md §4.E.
func (e *Environment) Get(name string) (object.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign finds the nearest scope (this one, or an enclosing one) that
// already defines name and overwrites the binding there. Assignment never
// implicitly declares — an undefined name is a RuntimeError, per spec.md
// §4.E.
func (e *Environment) Assign(name string, value object.Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}

// Function is a first-class, closure-capturing Aoi function value. It
// implements object.Value so it can flow through the same Value-typed
// slots as every other runtime kind.
type Function struct {
	Name    string
	Params  []string
	Body    []ast.Stmt
	Closure *Environment
}

func (f *Function) Type() object.Type { return object.FUNCTION }
func (f *Function) String() string    { return fmt.Sprintf("<fn %s>", f.Name) }
