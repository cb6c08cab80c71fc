//go:generate go run ../cmd/ast.go

package ast

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

type TokenType uint8

const (
	TokenIdentifier TokenType = iota
	TokenKeyword
	TokenString
	TokenNumber
	TokenOperator
	TokenOpenParen
	TokenCloseParen
	TokenComma
	TokenNewline
)

var tokenTypeNames = [...]string{
	TokenIdentifier: "IDENTIFIER",
	TokenKeyword:    "KEYWORD",
	TokenString:     "STRING",
	TokenNumber:     "NUMBER",
	TokenOperator:   "OPERATOR",
	TokenOpenParen:  "OPEN_PAREN",
	TokenCloseParen: "CLOSE_PAREN",
	TokenComma:      "COMMA",
	TokenNewline:    "NEWLINE",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// Position locates a token in its source. It is only used for diagnostics.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Line == 0 {
		return "line ?"
	}
	if p.Filename == "" {
		return fmt.Sprintf("line %d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Token is a classified lexeme. Literal holds the coerced value: an int
// for number tokens, the unquoted text for string tokens, nil otherwise.
type Token struct {
	TokenType TokenType
	Lexeme    string
	Literal   interface{}
	Pos       Position
}

// Equal reports whether two tokens have the same type and lexeme.
// Number tokens compare by value, so 007 equals 7. Positions are ignored.
func (t Token) Equal(other Token) bool {
	if t.TokenType != other.TokenType {
		return false
	}
	if t.TokenType == TokenNumber {
		a, errA := t.Value()
		b, errB := other.Value()
		if errA == nil && errB == nil {
			return a == b
		}
	}
	return t.Lexeme == other.Lexeme
}

// Value returns the literal value of a number or string token. Tokens built
// without a Literal get one derived from the lexeme. Other tokens have no
// value.
func (t Token) Value() (interface{}, error) {
	if t.Literal != nil {
		return t.Literal, nil
	}

	switch t.TokenType {
	case TokenNumber:
		n, err := strconv.Atoi(t.Lexeme)
		if err != nil {
			return nil, errors.Errorf("invalid number %q", t.Lexeme)
		}
		return n, nil
	case TokenString:
		l := len(t.Lexeme)
		if l < 2 || (t.Lexeme[0] != '"' && t.Lexeme[0] != '\'') || t.Lexeme[l-1] != t.Lexeme[0] {
			return nil, errors.Errorf("unquoted string %q", t.Lexeme)
		}
		return t.Lexeme[1 : l-1], nil
	}
	return nil, nil
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.TokenType, t.Lexeme)
}
