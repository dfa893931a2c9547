// Package scanner tokenizes Lox source text. It makes a single forward pass
// with at most two characters of lookahead, collecting lexical errors on a
// side channel so one scan surfaces every bad lexeme.
package scanner

import (
	"fmt"
	"strconv"

	"github.com/lemonberrylabs/golox/pkg/token"
	"github.com/lemonberrylabs/golox/pkg/types"
)

// Error is a lexical error: an invalid character or unterminated string.
// The scanner records it and keeps going.
type Error struct {
	Line    int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

var keywords = map[string]token.Type{
	"and":    token.And,
	"class":  token.Class,
	"else":   token.Else,
	"false":  token.False,
	"for":    token.For,
	"fun":    token.Fun,
	"if":     token.If,
	"nil":    token.Nil,
	"or":     token.Or,
	"print":  token.Print,
	"return": token.Return,
	"super":  token.Super,
	"this":   token.This,
	"true":   token.True,
	"var":    token.Var,
	"while":  token.While,
}

// Scanner tokenizes a Lox source string.
type Scanner struct {
	source string
	tokens []token.Token
	errs   []*Error

	start   int // offset of the lexeme being scanned
	current int // offset of the cursor
	line    int
}

// New creates a scanner for the given source text.
func New(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// Scan tokenizes the entire source and returns the tokens, terminated by an
// EOF token, along with any lexical errors encountered. Errors never abort
// the scan.
func (s *Scanner) Scan() ([]token.Token, []*Error) {
	for !s.isAtEnd() {
		// We are at the beginning of the next lexeme.
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, token.Token{Type: token.EOF, Literal: types.Null, Line: s.line})
	return s.tokens, s.errs
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(token.LeftParen)
	case ')':
		s.addToken(token.RightParen)
	case '{':
		s.addToken(token.LeftBrace)
	case '}':
		s.addToken(token.RightBrace)
	case ',':
		s.addToken(token.Comma)
	case '.':
		s.addToken(token.Dot)
	case '-':
		s.addToken(token.Minus)
	case '+':
		s.addToken(token.Plus)
	case ';':
		s.addToken(token.Semicolon)
	case '*':
		s.addToken(token.Star)
	case '!':
		if s.match('=') {
			s.addToken(token.BangEqual)
		} else {
			s.addToken(token.Bang)
		}
	case '=':
		if s.match('=') {
			s.addToken(token.EqualEqual)
		} else {
			s.addToken(token.Equal)
		}
	case '<':
		if s.match('=') {
			s.addToken(token.LessEqual)
		} else {
			s.addToken(token.Less)
		}
	case '>':
		if s.match('=') {
			s.addToken(token.GreaterEqual)
		} else {
			s.addToken(token.Greater)
		}
	case '/':
		if s.match('/') {
			// A comment goes until the end of the line.
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(token.Slash)
		}
	case ' ', '\r', '\t':
		// Whitespace is discarded.
	case '\n':
		s.line++
	case '"':
		s.readString()
	default:
		switch {
		case isDigit(c):
			s.readNumber()
		case isAlpha(c):
			s.readIdentifier()
		default:
			s.errorf("Unexpected character.")
		}
	}
}

// readString scans a string literal. Strings may span lines; reaching end of
// input before the closing quote is a lexical error.
func (s *Scanner) readString() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.errorf("Unterminated string.")
		return
	}

	// The closing quote.
	s.advance()

	// Trim the surrounding quotes.
	value := s.source[s.start+1 : s.current-1]
	s.addLiteralToken(token.String, types.NewString(value))
}

// readNumber scans a numeric literal: digits with an optional fractional
// part that must have digits on both sides of the decimal point.
func (s *Scanner) readNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		// Consume the '.'.
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	value, err := strconv.ParseFloat(s.source[s.start:s.current], 64)
	if err != nil {
		s.errorf("Invalid number.")
		return
	}
	s.addLiteralToken(token.Number, types.NewNumber(value))
}

// readIdentifier scans an identifier with maximal munch and resolves it
// against the keyword table.
func (s *Scanner) readIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := s.source[s.start:s.current]
	if kw, ok := keywords[text]; ok {
		s.addToken(kw)
		return
	}
	s.addToken(token.Identifier)
}

// advance consumes the current character and returns it.
func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

// match consumes the current character only if it equals expected.
func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

// peek returns the current character without consuming it.
func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

// peekNext returns the character after the current one. Two characters is
// the scanner's entire lookahead window.
func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) addToken(tt token.Type) {
	s.addLiteralToken(tt, types.Null)
}

func (s *Scanner) addLiteralToken(tt token.Type, literal types.Value) {
	s.tokens = append(s.tokens, token.Token{
		Type:    tt,
		Lexeme:  s.source[s.start:s.current],
		Literal: literal,
		Line:    s.line,
	})
}

func (s *Scanner) errorf(format string, args ...interface{}) {
	s.errs = append(s.errs, &Error{Line: s.line, Message: fmt.Sprintf(format, args...)})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
