package unify

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/karasawa/unify/engine"
)

// Parser reads terms in functor notation, e.g. `parent(X, father(Y))`,
// nested arbitrarily.
//
// Which identifiers denote variables is a surface-syntax convention, not a
// property of the term model; the default is Prolog's (a leading uppercase
// letter or underscore) and the options below override it.
type Parser struct {
	lexer      *Lexer
	current    Token
	err        error
	isVariable func(name string) bool
}

// ParseOption is an option for NewParser.
type ParseOption func(*Parser)

// WithVarFunc sets the rule deciding which identifiers are variables.
func WithVarFunc(f func(name string) bool) ParseOption {
	return func(p *Parser) {
		p.isVariable = f
	}
}

// WithVariables treats exactly the given names as variables and everything
// else as atoms.
func WithVariables(names ...string) ParseOption {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(p *Parser) {
		p.isVariable = func(name string) bool {
			return set[name]
		}
	}
}

// NewParser creates a parser over input.
func NewParser(input string, opts ...ParseOption) *Parser {
	p := Parser{
		lexer:      NewLexer(input),
		isVariable: defaultIsVariable,
	}
	for _, o := range opts {
		o(&p)
	}
	p.advance()
	return &p
}

func defaultIsVariable(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return r == '_' || unicode.IsUpper(r)
}

func (p *Parser) advance() {
	if p.err != nil {
		return
	}
	p.current, p.err = p.lexer.Next()
}

// Term reads a single term and expects nothing to follow it.
func (p *Parser) Term() (engine.Term, error) {
	t, err := p.term()
	if err != nil {
		return nil, err
	}
	if p.current.Kind != TokenEOF {
		return nil, p.unexpected()
	}
	return t, nil
}

func (p *Parser) term() (engine.Term, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.current.Kind != TokenIdent {
		return nil, p.unexpected()
	}
	ident := p.current
	p.advance()
	if p.err != nil {
		return nil, p.err
	}

	if p.current.Kind != TokenOpen {
		if p.isVariable(ident.Val) {
			return engine.Variable(ident.Val), nil
		}
		return engine.Atom(ident.Val), nil
	}

	if p.isVariable(ident.Val) {
		return nil, &SyntaxError{Pos: ident.Pos, Detail: fmt.Sprintf("variable %s cannot be a functor", ident.Val)}
	}

	var args []engine.Term
	for {
		p.advance()
		a, err := p.term()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if p.current.Kind != TokenComma {
			break
		}
	}
	if p.current.Kind != TokenClose {
		return nil, p.unexpected()
	}
	p.advance()
	if p.err != nil {
		return nil, p.err
	}
	return engine.Atom(ident.Val).Apply(args...), nil
}

func (p *Parser) unexpected() error {
	if p.err != nil {
		return p.err
	}
	return &SyntaxError{Pos: p.current.Pos, Detail: fmt.Sprintf("unexpected token %s", p.current)}
}
