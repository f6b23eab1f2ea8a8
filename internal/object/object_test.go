/*
File   : aoi/internal/object/object_test.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_StringRendersNaturalDecimalForm(t *testing.T) {
	assert.Equal(t, "3", (&Number{Value: 3}).String())
	assert.Equal(t, "3.5", (&Number{Value: 3.5}).String())
	assert.Equal(t, "-2", (&Number{Value: -2}).String())
}

func TestBoolean_String(t *testing.T) {
	assert.Equal(t, "true", (&Boolean{Value: true}).String())
	assert.Equal(t, "false", (&Boolean{Value: false}).String())
}

func TestNil_String(t *testing.T) {
	assert.Equal(t, "nil", NilValue.String())
}

func TestArray_StringRendersElementsRecursively(t *testing.T) {
	arr := &Array{Elements: []Value{
		&Number{Value: 10},
		&Number{Value: 99},
		&Number{Value: 30},
	}}
	assert.Equal(t, "[10, 99, 30]", arr.String())
}

func TestArray_SharedByReference(t *testing.T) {
	arr := &Array{Elements: []Value{&Number{Value: 1}}}
	alias := arr
	alias.Elements[0] = &Number{Value: 2}
	assert.Equal(t, float64(2), arr.Elements[0].(*Number).Value)
}
