package scan

import (
	"fmt"

	"github.com/chidiwilliams/tinyexpr/ast"
)

const reasonNoCategory = "could not find a token category for the lexeme"

// LexicalError reports the first piece of source text the scanner could
// not classify.
type LexicalError struct {
	Text   string
	Pos    ast.Position
	Reason string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("[%s] Error at '%s': %s.", e.Pos, e.Text, e.Reason)
}
