package parse

import (
	"fmt"
	"strings"

	"github.com/chidiwilliams/tinyexpr/ast"
)

// SyntaxError reports the first token that did not fit the grammar.
// Got is nil when the parser ran out of tokens.
type SyntaxError struct {
	Expected []ast.TokenType
	Got      *ast.Token
	Msg      string
}

func (e *SyntaxError) Error() string {
	var pos, where string
	if e.Got == nil {
		pos = "end"
		where = "end"
	} else {
		pos = e.Got.Pos.String()
		where = "'" + e.Got.Lexeme + "'"
	}
	return fmt.Sprintf("[%s] Error at %s: %s", pos, where, e.message())
}

func (e *SyntaxError) message() string {
	if e.Msg != "" {
		return e.Msg
	}

	got := "end of input"
	if e.Got != nil {
		got = e.Got.TokenType.String()
	}
	if len(e.Expected) == 0 {
		return "Unexpected " + got + "."
	}

	names := make([]string, len(e.Expected))
	for i, t := range e.Expected {
		names[i] = t.String()
	}
	return fmt.Sprintf("Expect %s but got %s.", strings.Join(names, " or "), got)
}
