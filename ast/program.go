package ast

// Program is the root of a parsed source text.
type Program struct {
	Statements []Stmt
}

// Target returns the name being assigned to.
func (a AssignStmt) Target() string {
	return a.Name.Lexeme
}
