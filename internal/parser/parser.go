/*
File   : aoi/internal/parser/parser.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/

// Package parser implements Aoi's recursive-descent parser with precedence
// climbing (spec.md §4.D). It consumes the token slice produced by
// internal/lexer and builds the ast.Stmt/ast.Expr trees walked by
// internal/interp.
//
// Unlike teacher's Pratt-table parser (parser.UnaryFuncs/BinaryFuncs), this
// parser follows the grammar's own precedence chain directly — one
// function per precedence level, from assignment down to primary — because
// the grammar is given as an explicit chain rather than a table of
// binding powers.
package parser

import (
	"fmt"

	"github.com/akashmaji946/aoi/internal/ast"
	"github.com/akashmaji946/aoi/internal/token"
)

// statementStartKeywords are the token kinds synchronize() treats as safe
// resumption points after a parse error (spec.md §4.D).
var statementStartKeywords = map[token.Kind]bool{
	token.CLASS:  true,
	token.FUN:    true,
	token.VAR:    true,
	token.FOR:    true,
	token.IF:     true,
	token.WHILE:  true,
	token.WRITE:  true,
	token.RETURN: true,
}

// Parser turns a token slice into a statement list, collecting errors
// rather than panicking on the first one (teacher's parser.Errors shape).
type Parser struct {
	tokens  []token.Token
	current int
	Errors  []string
}

// New creates a Parser over tokens (normally the full output of
// lexer.ScanTokens, EOF included).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses the entire token stream into a program: a slice of
// top-level statements. Per spec.md §4.D, if any top-level statement
// fails to parse, the overall parse fails and no AST is returned — callers
// should check p.Errors first.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.atEnd() {
		statements = append(statements, p.declaration())
	}
	if len(p.Errors) > 0 {
		return nil
	}
	return statements
}

// --- token cursor helpers --------------------------------------------------

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

func (p *Parser) atEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == kind
}

// match advances and returns true if the current token is one of kinds.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token kind, or records a ParseError
// naming the offending lexeme (spec.md §4.D) and returns the zero Token.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.errorAt(p.peek(), message)
	return token.Token{}
}

func (p *Parser) errorAt(tok token.Token, message string) {
	lexeme := tok.Lexeme
	if tok.Kind == token.EOF {
		lexeme = "end of input"
	}
	p.Errors = append(p.Errors, fmt.Sprintf("[line %d] Error at '%s': %s", tok.Line, lexeme, message))
}

// synchronize discards tokens until it finds a likely statement boundary —
// a consumed semicolon or a statement-starting keyword — per spec.md §4.D.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		if statementStartKeywords[p.peek().Kind] {
			return
		}
		p.advance()
	}
}
