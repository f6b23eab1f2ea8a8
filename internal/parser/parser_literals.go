/*
File   : aoi/internal/parser/parser_literals.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/aoi/internal/ast"
	"github.com/akashmaji946/aoi/internal/token"
)

// primary parses the grammar's terminal expression forms: literals,
// parenthesized groups, array literals, and bare identifiers.
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.NUMBER):
		return &ast.Literal{Value: p.previous().Literal.Number}
	case p.match(token.STRING):
		return &ast.Literal{Value: p.previous().Literal.Str}
	case p.match(token.TRUE):
		return &ast.Literal{Value: true}
	case p.match(token.FALSE):
		return &ast.Literal{Value: false}
	case p.match(token.NIL):
		return &ast.Literal{Value: nil}
	case p.match(token.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LEFT_PAREN):
		inner := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{Inner: inner}
	case p.match(token.LEFT_BRACKET):
		return p.arrayLiteral()
	}

	p.errorAt(p.peek(), "Expect expression.")
	p.advance()
	return &ast.Literal{Value: nil}
}

// arrayLiteral parses `[ ( expr ( , expr )* )? ]`; the opening '[' has
// already been consumed by primary.
func (p *Parser) arrayLiteral() ast.Expr {
	var elements []ast.Expr
	if !p.check(token.RIGHT_BRACKET) {
		for {
			elements = append(elements, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_BRACKET, "Expect ']' after array elements.")
	return &ast.Array{Elements: elements}
}
