package parse

import (
	"github.com/chidiwilliams/tinyexpr/ast"
	"github.com/chidiwilliams/tinyexpr/scan"
)

// Parser parses a flat list of tokens into
// an AST representation of the source program
type Parser struct {
	tokens  []ast.Token
	current int
}

// NewParser returns a new Parser that reads a list of tokens
func NewParser(tokens []ast.Token) *Parser {
	return &Parser{tokens: tokens}
}

/**
Parser grammar:

	program    => NEWLINE* ( statement NEWLINE* )*
	statement  => assignment | expression
	assignment => IDENTIFIER "=" expression
	expression => primary ( OPERATOR expression )*    (precedence climbing)
	primary    => call | IDENTIFIER | NUMBER | STRING
	call       => ( KEYWORD | IDENTIFIER ) "(" arguments? ")"
	arguments  => expression ( "," expression )*

*/

// Parse reads the list of tokens and returns the program they encode.
// Parsing stops at the first error; no partial program is returned.
func (p *Parser) Parse() (*ast.Program, error) {
	p.current = 0

	var program *ast.Program
	err := p.try(func() {
		statements := make([]ast.Stmt, 0)
		p.skipNewlines()
		for !p.isAtEnd() {
			statements = append(statements, p.statement())
			p.skipNewlines()
		}
		program = &ast.Program{Statements: statements}
	})
	if err != nil {
		return nil, err
	}
	return program, nil
}

// Source scans and parses source in one step.
func Source(sc *scan.Scanner, filename, source string) (*ast.Program, error) {
	tokens, err := sc.ScanTokens(filename, source)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse()
}

// try runs fn, turning a *SyntaxError panic into an error.
func (p *Parser) try(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if syntaxErr, ok := r.(*SyntaxError); ok {
				err = syntaxErr
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

// statement parses an assignment if the current token is an identifier
// followed by "=", and an expression otherwise.
func (p *Parser) statement() ast.Stmt {
	if p.check(ast.TokenIdentifier) {
		if next, ok := p.peekNext(); ok && next.TokenType == ast.TokenOperator && next.Lexeme == "=" {
			return p.assignment()
		}
	}
	return ast.ExpressionStmt{Expr: p.expression(0)}
}

func (p *Parser) assignment() ast.Stmt {
	name := p.consume(ast.TokenIdentifier)
	equals := p.consume(ast.TokenOperator)
	if equals.Lexeme != "=" {
		p.error(&SyntaxError{
			Got: &equals,
			Msg: "Expect '=' in assignment but got '" + equals.Lexeme + "'.",
		})
	}
	value := p.expression(0)
	return ast.AssignStmt{Name: name, Value: value}
}

// expression parses a chain of binary operators by precedence climbing.
// Only operators binding at least as tightly as minPrecedence are taken;
// the right operand is parsed one level higher so that operators of equal
// precedence associate to the left.
func (p *Parser) expression(minPrecedence int) ast.Expr {
	left := p.primary()

	for p.check(ast.TokenOperator) {
		operator := p.peek()
		prec := precedence(operator.Lexeme)
		if prec < minPrecedence || prec == precedenceNone {
			break
		}
		p.advance()
		right := p.expression(prec + 1)
		left = ast.BinaryExpr{Left: left, Operator: operator, Right: right}
	}

	return left
}

func (p *Parser) primary() ast.Expr {
	if p.isAtEnd() {
		p.error(&SyntaxError{})
	}

	token := p.peek()
	switch token.TokenType {
	case ast.TokenKeyword:
		return p.call()
	case ast.TokenIdentifier:
		if next, ok := p.peekNext(); ok && next.TokenType == ast.TokenOpenParen {
			return p.call()
		}
		return ast.VariableExpr{Name: p.advance()}
	case ast.TokenNumber, ast.TokenString:
		return p.literal()
	}

	p.error(&SyntaxError{Got: &token})
	return nil
}

// literal takes the value from the token, or from its lexeme for tokens
// that were built without one.
func (p *Parser) literal() ast.Expr {
	token := p.advance()
	value, err := token.Value()
	if err != nil {
		p.error(&SyntaxError{
			Got: &token,
			Msg: "Invalid " + token.TokenType.String() + " literal '" + token.Lexeme + "'.",
		})
	}
	return ast.LiteralExpr{Value: value}
}

// call parses a function call whose head is the current keyword or
// identifier. Arguments are separated by commas; a trailing comma is
// rejected since the argument after it is missing.
func (p *Parser) call() ast.Expr {
	name := p.advance()
	p.consume(ast.TokenOpenParen)

	args := make([]ast.Expr, 0)
	if !p.check(ast.TokenCloseParen) {
		for {
			args = append(args, p.expression(0))
			if !p.match(ast.TokenComma) {
				break
			}
		}
	}

	p.consume(ast.TokenCloseParen)
	return ast.CallExpr{Name: name, Arguments: args}
}

func (p *Parser) skipNewlines() {
	for p.match(ast.TokenNewline) {
	}
}

// consume checks that the next ast.Token is of the given ast.TokenType and then
// advances to the next token. If the check fails, it panics with a *SyntaxError.
func (p *Parser) consume(tokenType ast.TokenType) ast.Token {
	if p.check(tokenType) {
		return p.advance()
	}

	err := &SyntaxError{Expected: []ast.TokenType{tokenType}}
	if !p.isAtEnd() {
		got := p.peek()
		err.Got = &got
	}
	p.error(err)
	return ast.Token{}
}

func (p *Parser) error(err *SyntaxError) {
	panic(err)
}

func (p *Parser) match(types ...ast.TokenType) bool {
	for _, tokenType := range types {
		if p.check(tokenType) {
			p.advance()
			return true
		}
	}

	return false
}

func (p *Parser) check(tokenType ast.TokenType) bool {
	if p.isAtEnd() {
		return false
	}

	return p.peek().TokenType == tokenType
}

func (p *Parser) advance() ast.Token {
	token := p.peek()
	p.current++
	return token
}

func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.tokens)
}

func (p *Parser) peek() ast.Token {
	return p.tokens[p.current]
}

func (p *Parser) peekNext() (ast.Token, bool) {
	if p.current+1 >= len(p.tokens) {
		return ast.Token{}, false
	}
	return p.tokens[p.current+1], true
}
