package ast

import (
	"testing"

	"github.com/lemonberrylabs/golox/pkg/token"
	"github.com/lemonberrylabs/golox/pkg/types"
)

func num(v float64) Expr {
	return &LiteralExpr{Value: types.NewNumber(v)}
}

func ident(name string) token.Token {
	return token.Token{Type: token.Identifier, Lexeme: name, Line: 1}
}

func op(tt token.Type, lexeme string) token.Token {
	return token.Token{Type: tt, Lexeme: lexeme, Line: 1}
}

func TestPrintExpr(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{
			"binary",
			&BinaryExpr{Left: num(1), Operator: op(token.Plus, "+"), Right: num(2)},
			"(+ 1 2)",
		},
		{
			"nested",
			&BinaryExpr{
				Left:     num(1),
				Operator: op(token.Plus, "+"),
				Right:    &BinaryExpr{Left: num(2), Operator: op(token.Star, "*"), Right: num(3)},
			},
			"(+ 1 (* 2 3))",
		},
		{
			"unary and grouping",
			&UnaryExpr{
				Operator: op(token.Minus, "-"),
				Right:    &GroupingExpr{Expression: num(4)},
			},
			"(- (group 4))",
		},
		{
			"nil literal",
			&LiteralExpr{Value: types.Null},
			"nil",
		},
		{
			"assignment",
			&AssignExpr{Name: ident("x"), Value: num(7)},
			"(= x 7)",
		},
		{
			"call",
			&CallExpr{Callee: &VariableExpr{Name: ident("f")}, Arguments: []Expr{num(1), num(2)}},
			"(call f 1 2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Printer{}).PrintExpr(tt.expr); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPrintStmt(t *testing.T) {
	tests := []struct {
		name string
		stmt Stmt
		want string
	}{
		{
			"print",
			&PrintStmt{Expression: num(1)},
			"(print 1)",
		},
		{
			"var without initializer",
			&VarStmt{Name: ident("x")},
			"(var x)",
		},
		{
			"var with initializer",
			&VarStmt{Name: ident("x"), Initializer: num(1)},
			"(var x 1)",
		},
		{
			"block",
			&BlockStmt{Statements: []Stmt{&PrintStmt{Expression: num(1)}}},
			"(block (print 1))",
		},
		{
			"if else",
			&IfStmt{
				Condition:  &LiteralExpr{Value: types.NewBool(true)},
				ThenBranch: &PrintStmt{Expression: num(1)},
				ElseBranch: &PrintStmt{Expression: num(2)},
			},
			"(if true (print 1) (print 2))",
		},
		{
			"function",
			&FunctionStmt{
				Name:   ident("f"),
				Params: []token.Token{ident("a"), ident("b")},
				Body:   []Stmt{&ReturnStmt{Keyword: op(token.Return, "return"), Value: num(1)}},
			},
			"(fun f (a b) (return 1))",
		},
		{
			"bare return",
			&ReturnStmt{Keyword: op(token.Return, "return")},
			"(return)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Printer{}).PrintStmt(tt.stmt); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPrintProgramJoinsLines(t *testing.T) {
	program := []Stmt{
		&PrintStmt{Expression: num(1)},
		&PrintStmt{Expression: num(2)},
	}
	want := "(print 1)\n(print 2)"
	if got := (Printer{}).PrintProgram(program); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
