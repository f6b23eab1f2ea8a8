/*
File   : aoi/internal/parser/parser_conditionals.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/aoi/internal/ast"
	"github.com/akashmaji946/aoi/internal/token"
)

// ifStmt parses `if ( expr ) statement ( else statement )?`.
func (p *Parser) ifStmt() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after if condition.")
	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return &ast.If{Cond: cond, Then: then, Else: els}
}

// whileStmt parses `while ( expr ) statement`.
func (p *Parser) whileStmt() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.While{Cond: cond, Body: body}
}
