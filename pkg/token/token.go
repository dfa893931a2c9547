// Package token defines the lexical token set of the Lox language.
package token

import (
	"fmt"

	"github.com/lemonberrylabs/golox/pkg/types"
)

// Type represents the type of a lexical token.
type Type int

const (
	// Single-character tokens
	LeftParen Type = iota // (
	RightParen            // )
	LeftBrace             // {
	RightBrace            // }
	Comma                 // ,
	Dot                   // .
	Minus                 // -
	Plus                  // +
	Semicolon             // ;
	Slash                 // /
	Star                  // *

	// One or two character tokens
	Bang         // !
	BangEqual    // !=
	Equal        // =
	EqualEqual   // ==
	Greater      // >
	GreaterEqual // >=
	Less         // <
	LessEqual    // <=

	// Literals
	Identifier
	String
	Number

	// Keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	EOF // end of input
)

// Token is a classified lexeme. Lexeme holds the exact source text, Literal
// the decoded runtime value for STRING and NUMBER tokens, and Line the
// 1-based source line for error reporting.
type Token struct {
	Type    Type
	Lexeme  string
	Literal types.Value
	Line    int
}

// String returns a debug-friendly representation of the token.
func (t Token) String() string {
	if t.Literal.IsNull() {
		return fmt.Sprintf("%s %s", t.Type, t.Lexeme)
	}
	return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, t.Literal)
}

// String returns the token type name.
func (t Type) String() string {
	switch t {
	case LeftParen:
		return "LEFT_PAREN"
	case RightParen:
		return "RIGHT_PAREN"
	case LeftBrace:
		return "LEFT_BRACE"
	case RightBrace:
		return "RIGHT_BRACE"
	case Comma:
		return "COMMA"
	case Dot:
		return "DOT"
	case Minus:
		return "MINUS"
	case Plus:
		return "PLUS"
	case Semicolon:
		return "SEMICOLON"
	case Slash:
		return "SLASH"
	case Star:
		return "STAR"
	case Bang:
		return "BANG"
	case BangEqual:
		return "BANG_EQUAL"
	case Equal:
		return "EQUAL"
	case EqualEqual:
		return "EQUAL_EQUAL"
	case Greater:
		return "GREATER"
	case GreaterEqual:
		return "GREATER_EQUAL"
	case Less:
		return "LESS"
	case LessEqual:
		return "LESS_EQUAL"
	case Identifier:
		return "IDENTIFIER"
	case String:
		return "STRING"
	case Number:
		return "NUMBER"
	case And:
		return "AND"
	case Class:
		return "CLASS"
	case Else:
		return "ELSE"
	case False:
		return "FALSE"
	case Fun:
		return "FUN"
	case For:
		return "FOR"
	case If:
		return "IF"
	case Nil:
		return "NIL"
	case Or:
		return "OR"
	case Print:
		return "PRINT"
	case Return:
		return "RETURN"
	case Super:
		return "SUPER"
	case This:
		return "THIS"
	case True:
		return "TRUE"
	case Var:
		return "VAR"
	case While:
		return "WHILE"
	case EOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}
