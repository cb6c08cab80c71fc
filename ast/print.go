package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print returns an S-expression for each statement in the program,
// one per line.
func Print(program *Program) string {
	var a astPrinter
	lines := make([]string, 0, len(program.Statements))
	for _, stmt := range program.Statements {
		lines = append(lines, a.printStmt(stmt))
	}
	return strings.Join(lines, "\n")
}

type astPrinter struct{}

func (a astPrinter) print(expr Expr) string {
	return expr.Accept(a).(string)
}

func (a astPrinter) printStmt(stmt Stmt) string {
	return stmt.Accept(a).(string)
}

func (a astPrinter) VisitAssignStmt(stmt AssignStmt) interface{} {
	return a.parenthesize("= "+stmt.Name.Lexeme, stmt.Value)
}

func (a astPrinter) VisitExpressionStmt(stmt ExpressionStmt) interface{} {
	return a.print(stmt.Expr)
}

func (a astPrinter) VisitBinaryExpr(expr BinaryExpr) interface{} {
	return a.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

func (a astPrinter) VisitCallExpr(expr CallExpr) interface{} {
	return a.parenthesize("call "+expr.Name.Lexeme, expr.Arguments...)
}

func (a astPrinter) VisitLiteralExpr(expr LiteralExpr) interface{} {
	switch v := expr.Value.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprint(v)
	}
}

func (a astPrinter) VisitVariableExpr(expr VariableExpr) interface{} {
	return expr.Name.Lexeme
}

func (a astPrinter) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder

	b.WriteString("(" + name)
	for _, expr := range exprs {
		b.WriteString(" " + a.print(expr))
	}
	b.WriteString(")")

	return b.String()
}
