package unify

import (
	"fmt"
	"unicode"
)

// TokenKind is a type of Token.
type TokenKind int

const (
	// TokenEOF is the end of the input.
	TokenEOF TokenKind = iota

	// TokenIdent is an identifier: letters, digits, and underscores.
	TokenIdent

	// TokenOpen is an open parenthesis.
	TokenOpen

	// TokenClose is a close parenthesis.
	TokenClose

	// TokenComma separates arguments.
	TokenComma
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "eof"
	case TokenIdent:
		return "ident"
	case TokenOpen:
		return "open"
	case TokenClose:
		return "close"
	case TokenComma:
		return "comma"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Token is a smallest meaningful unit of an expression.
type Token struct {
	Kind TokenKind
	Val  string
	Pos  int
}

func (t Token) String() string {
	if t.Kind == TokenEOF {
		return "<eof>"
	}
	return fmt.Sprintf("<%s %q>", t.Kind, t.Val)
}

// Lexer turns an expression like `p(X, f(Y))` into a sequence of tokens.
type Lexer struct {
	input []rune
	pos   int
}

// NewLexer creates a lexer over input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

// Next returns the next token.
func (l *Lexer) Next() (Token, error) {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Pos: l.pos}, nil
	}

	start := l.pos
	switch r := l.input[l.pos]; {
	case r == '(':
		l.pos++
		return Token{Kind: TokenOpen, Val: "(", Pos: start}, nil
	case r == ')':
		l.pos++
		return Token{Kind: TokenClose, Val: ")", Pos: start}, nil
	case r == ',':
		l.pos++
		return Token{Kind: TokenComma, Val: ",", Pos: start}, nil
	case isIdentRune(r):
		for l.pos < len(l.input) && isIdentRune(l.input[l.pos]) {
			l.pos++
		}
		return Token{Kind: TokenIdent, Val: string(l.input[start:l.pos]), Pos: start}, nil
	default:
		return Token{}, &SyntaxError{Pos: start, Detail: fmt.Sprintf("unexpected character %q", r)}
	}
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
