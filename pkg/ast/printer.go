package ast

import (
	"fmt"
	"strings"
)

// Printer renders AST nodes in a fully parenthesized prefix form, e.g.
// "(+ 1 (* 2 3))". Used by tests and the CLI's --ast mode.
type Printer struct{}

// PrintProgram renders a statement sequence, one statement per line.
func (p Printer) PrintProgram(stmts []Stmt) string {
	lines := make([]string, len(stmts))
	for i, stmt := range stmts {
		lines[i] = p.PrintStmt(stmt)
	}
	return strings.Join(lines, "\n")
}

// PrintExpr renders a single expression.
func (p Printer) PrintExpr(expr Expr) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		if e.Value.IsNull() {
			return "nil"
		}
		return e.Value.String()
	case *GroupingExpr:
		return p.parenthesize("group", p.PrintExpr(e.Expression))
	case *UnaryExpr:
		return p.parenthesize(e.Operator.Lexeme, p.PrintExpr(e.Right))
	case *BinaryExpr:
		return p.parenthesize(e.Operator.Lexeme, p.PrintExpr(e.Left), p.PrintExpr(e.Right))
	case *LogicalExpr:
		return p.parenthesize(e.Operator.Lexeme, p.PrintExpr(e.Left), p.PrintExpr(e.Right))
	case *VariableExpr:
		return e.Name.Lexeme
	case *AssignExpr:
		return p.parenthesize("= "+e.Name.Lexeme, p.PrintExpr(e.Value))
	case *CallExpr:
		parts := []string{p.PrintExpr(e.Callee)}
		for _, arg := range e.Arguments {
			parts = append(parts, p.PrintExpr(arg))
		}
		return p.parenthesize("call", parts...)
	default:
		return fmt.Sprintf("<unknown expr %T>", expr)
	}
}

// PrintStmt renders a single statement.
func (p Printer) PrintStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		return p.parenthesize("expr", p.PrintExpr(s.Expression))
	case *PrintStmt:
		return p.parenthesize("print", p.PrintExpr(s.Expression))
	case *VarStmt:
		if s.Initializer == nil {
			return p.parenthesize("var " + s.Name.Lexeme)
		}
		return p.parenthesize("var "+s.Name.Lexeme, p.PrintExpr(s.Initializer))
	case *BlockStmt:
		parts := make([]string, len(s.Statements))
		for i, inner := range s.Statements {
			parts[i] = p.PrintStmt(inner)
		}
		return p.parenthesize("block", parts...)
	case *IfStmt:
		if s.ElseBranch == nil {
			return p.parenthesize("if", p.PrintExpr(s.Condition), p.PrintStmt(s.ThenBranch))
		}
		return p.parenthesize("if", p.PrintExpr(s.Condition), p.PrintStmt(s.ThenBranch), p.PrintStmt(s.ElseBranch))
	case *WhileStmt:
		return p.parenthesize("while", p.PrintExpr(s.Condition), p.PrintStmt(s.Body))
	case *FunctionStmt:
		params := make([]string, len(s.Params))
		for i, param := range s.Params {
			params[i] = param.Lexeme
		}
		parts := []string{"(" + strings.Join(params, " ") + ")"}
		for _, inner := range s.Body {
			parts = append(parts, p.PrintStmt(inner))
		}
		return p.parenthesize("fun "+s.Name.Lexeme, parts...)
	case *ReturnStmt:
		if s.Value == nil {
			return p.parenthesize("return")
		}
		return p.parenthesize("return", p.PrintExpr(s.Value))
	default:
		return fmt.Sprintf("<unknown stmt %T>", stmt)
	}
}

func (p Printer) parenthesize(name string, parts ...string) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, part := range parts {
		sb.WriteByte(' ')
		sb.WriteString(part)
	}
	sb.WriteByte(')')
	return sb.String()
}
