/*
File   : aoi/internal/parser/parser_statements.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/aoi/internal/ast"
	"github.com/akashmaji946/aoi/internal/token"
)

// declaration parses one top-level-or-block statement, routing to
// synchronize() on error so a later call to Parse can still report every
// statement's errors in one pass (spec.md §4.D error recovery).
func (p *Parser) declaration() ast.Stmt {
	before := len(p.Errors)
	var stmt ast.Stmt
	switch {
	case p.match(token.VAR):
		stmt = p.varDecl()
	case p.match(token.FUN):
		stmt = p.funDecl()
	default:
		stmt = p.statement()
	}
	if len(p.Errors) > before {
		p.synchronize()
	}
	return stmt
}

// varDecl parses `var IDENT ( = expression )? ;`.
func (p *Parser) varDecl() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name.")
	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.Var{Name: name, Init: init}
}

// funDecl parses `fun IDENT ( params? ) block`.
func (p *Parser) funDecl() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect function name.")
	p.consume(token.LEFT_PAREN, "Expect '(' after function name.")
	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			params = append(params, p.consume(token.IDENTIFIER, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after parameters.")
	p.consume(token.LEFT_BRACE, "Expect '{' before function body.")
	body := p.blockStatements()
	return &ast.Function{Name: name, Params: params, Body: body}
}

// statement dispatches on the leading token to one of the non-declaration
// statement productions in spec.md §4.D's grammar.
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.WRITE):
		return p.printStmt()
	case p.match(token.SCAN):
		return p.scanStmt()
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.FOR):
		return p.forStmt()
	case p.match(token.RETURN):
		return p.returnStmt()
	case p.match(token.LEFT_BRACE):
		return &ast.Block{Statements: p.blockStatements()}
	case p.check(token.CLASS), p.check(token.THIS), p.check(token.SUPER):
		// Reserved for forward compatibility but not implemented
		// (spec.md §9 "Unreachable grammar productions").
		tok := p.advance()
		p.errorAt(tok, "Expect expression.")
		return &ast.ExprStmt{Expr: &ast.Literal{Value: nil}}
	default:
		return p.exprStmt()
	}
}

func (p *Parser) printStmt() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'write'.")
	value := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after value.")
	p.consume(token.SEMICOLON, "Expect ';' after value.")
	return &ast.Print{Expr: value}
}

func (p *Parser) scanStmt() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'scan'.")
	name := p.consume(token.IDENTIFIER, "Expect variable name.")
	p.consume(token.RIGHT_PAREN, "Expect ')' after variable name.")
	p.consume(token.SEMICOLON, "Expect ';' after statement.")
	return &ast.Input{Name: name}
}

func (p *Parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after return value.")
	return &ast.Return{Keyword: keyword, Value: value}
}

func (p *Parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExprStmt{Expr: expr}
}

// blockStatements parses statements up to (and consuming) the closing
// '}'; the opening '{' has already been consumed by the caller.
func (p *Parser) blockStatements() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		statements = append(statements, p.declaration())
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after block.")
	return statements
}
