/*
File   : aoi/internal/token/token_test.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIdentifier_ReservedWordBecomesKeyword(t *testing.T) {
	tok := NewIdentifier("while", 3)
	assert.Equal(t, WHILE, tok.Kind)
	assert.Equal(t, 3, tok.Line)
}

func TestNewIdentifier_NonReservedStaysIdentifier(t *testing.T) {
	tok := NewIdentifier("counter", 1)
	assert.Equal(t, IDENTIFIER, tok.Kind)
	assert.Equal(t, "counter", tok.Literal.Identifier)
}

func TestNewNumber_SetsLiteralPayload(t *testing.T) {
	tok := NewNumber("42", 42.0, 1)
	assert.True(t, tok.Literal.IsNumber)
	assert.Equal(t, 42.0, tok.Literal.Number)
}

func TestNewString_SetsLiteralPayload(t *testing.T) {
	tok := NewString(`"hi"`, "hi", 1)
	assert.True(t, tok.Literal.IsString)
	assert.Equal(t, "hi", tok.Literal.Str)
}
