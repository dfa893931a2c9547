// Package ast defines the Lox abstract syntax tree: a closed set of
// expression nodes and a closed set of statement nodes. Nodes own their
// children exclusively and are immutable after parsing.
package ast

import (
	"github.com/lemonberrylabs/golox/pkg/token"
	"github.com/lemonberrylabs/golox/pkg/types"
)

// Expr is the interface for all expression nodes. Every expression
// evaluates to exactly one runtime value or raises a runtime error.
type Expr interface {
	exprNode()
}

// Stmt is the interface for all statement nodes. Statements produce side
// effects only, never values.
type Stmt interface {
	stmtNode()
}

// LiteralExpr represents a literal value: number, string, boolean, or nil.
type LiteralExpr struct {
	Value types.Value
}

func (e *LiteralExpr) exprNode() {}

// GroupingExpr represents a parenthesized sub-expression.
type GroupingExpr struct {
	Expression Expr
}

func (e *GroupingExpr) exprNode() {}

// UnaryExpr represents a unary operation (!x, -x).
type UnaryExpr struct {
	Operator token.Token
	Right    Expr
}

func (e *UnaryExpr) exprNode() {}

// BinaryExpr represents a binary operation (+, -, *, /, comparisons, equality).
type BinaryExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *BinaryExpr) exprNode() {}

// LogicalExpr represents a short-circuiting "and"/"or".
type LogicalExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *LogicalExpr) exprNode() {}

// VariableExpr represents a variable reference.
type VariableExpr struct {
	Name token.Token
}

func (e *VariableExpr) exprNode() {}

// AssignExpr represents assignment to an already-declared variable.
type AssignExpr struct {
	Name  token.Token
	Value Expr
}

func (e *AssignExpr) exprNode() {}

// CallExpr represents a call. Paren is the closing parenthesis token, kept
// for reporting call-site errors on the right line.
type CallExpr struct {
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func (e *CallExpr) exprNode() {}

// ExpressionStmt is an expression evaluated for its side effects.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) stmtNode() {}

// PrintStmt evaluates an expression and prints its value.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) stmtNode() {}

// VarStmt declares a variable in the innermost scope. A nil Initializer
// binds the name to nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) stmtNode() {}

// BlockStmt is an ordered statement sequence introducing one new scope.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) stmtNode() {}

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt // nil if absent
}

func (s *IfStmt) stmtNode() {}

// WhileStmt is a condition-guarded loop. "for" loops desugar to this at
// parse time; there is no distinct runtime construct.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) stmtNode() {}

// FunctionStmt declares a named function with ordered parameters.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) stmtNode() {}

// ReturnStmt unwinds exactly one call frame, carrying Value (nil if absent)
// as the call's result. Keyword is kept for error reporting.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil if absent
}

func (s *ReturnStmt) stmtNode() {}
