/*
File   : aoi/internal/parser/parser_loops.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/aoi/internal/ast"
	"github.com/akashmaji946/aoi/internal/token"
)

// forStmt parses `for ( init? ; cond? ; incr? ) statement` and desugars it
// into a While wrapped in a Block, per spec.md §4.D: the evaluator never
// sees a For node. A missing condition is treated as the literal `true`;
// a present increment is appended to the loop body.
func (p *Parser) forStmt() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.match(token.VAR):
		initializer = p.varDecl()
	default:
		initializer = p.exprStmt()
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.ExprStmt{Expr: increment}}}
	}

	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.While{Cond: condition, Body: body}

	if initializer != nil {
		body = &ast.Block{Statements: []ast.Stmt{initializer, body}}
	}

	return body
}
