/*
File   : aoi/internal/environment/environment_test.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/aoi/internal/object"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("x", &object.Number{Value: 5})

	v, err := env.Get("x")
	require.NoError(t, err)
	assert.Equal(t, float64(5), v.(*object.Number).Value)
}

func TestGet_UndefinedInAnyScope_Errors(t *testing.T) {
	env := New(nil)
	_, err := env.Get("missing")
	require.Error(t, err)
	assert.Equal(t, "Undefined variable 'missing'.", err.Error())
}

func TestGet_WalksEnclosingChain(t *testing.T) {
	outer := New(nil)
	outer.Define("x", &object.Number{Value: 1})
	inner := New(outer)

	v, err := inner.Get("x")
	require.NoError(t, err)
	assert.Equal(t, float64(1), v.(*object.Number).Value)
}

// Shadowing: declaring x again in the same scope overwrites without
// error, per spec.md's define() semantics (a deliberate divergence from
// a stricter redeclaration-rejecting scope model).
func TestDefine_RedeclarationInSameScopeShadowsWithoutError(t *testing.T) {
	env := New(nil)
	env.Define("x", &object.Number{Value: 1})
	env.Define("x", &object.Number{Value: 2})

	v, err := env.Get("x")
	require.NoError(t, err)
	assert.Equal(t, float64(2), v.(*object.Number).Value)
}

func TestAssign_FindsNearestDefiningScope(t *testing.T) {
	outer := New(nil)
	outer.Define("x", &object.Number{Value: 1})
	inner := New(outer)

	err := inner.Assign("x", &object.Number{Value: 9})
	require.NoError(t, err)

	v, _ := outer.Get("x")
	assert.Equal(t, float64(9), v.(*object.Number).Value)
}

func TestAssign_UndefinedNameErrors(t *testing.T) {
	env := New(nil)
	err := env.Assign("never_declared", &object.Number{Value: 1})
	require.Error(t, err)
	assert.Equal(t, "Undefined variable 'never_declared'.", err.Error())
}

// Closure capture: a Function's Closure is its defining environment,
// shared by pointer, so bindings changed after the Function is created are
// still visible through it — spec.md §8 property 5.
func TestClosure_SharesParentByPointerNotCopy(t *testing.T) {
	outer := New(nil)
	outer.Define("x", &object.Number{Value: 1})

	fn := &Function{Name: "f", Closure: outer}

	outer.Define("x", &object.Number{Value: 2})

	v, err := fn.Closure.Get("x")
	require.NoError(t, err)
	assert.Equal(t, float64(2), v.(*object.Number).Value)
}
