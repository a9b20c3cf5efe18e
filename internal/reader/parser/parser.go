// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the mlisp language.
package parser

import (
	"github.com/michaelmacinnis/mlisp/internal/common/struct/loc"
	"github.com/michaelmacinnis/mlisp/internal/common/struct/token"
	"github.com/michaelmacinnis/mlisp/internal/reader/tree"
)

// Error is a parse failure. Incomplete is set when the input ended before
// every expression was closed.
type Error struct {
	Incomplete bool
	Message    string
	Source     loc.T
}

func (e *Error) Error() string {
	return e.Source.String() + ": " + e.Message
}

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	last  loc.T           // Location of the most recent token.
	token *token.T        // Token lookahead.
}

// New creates a new parser that consumes the tokens produced by item.
func New(label string, item func() *token.T) *T {
	return &T{item: item, last: loc.T{Char: 1, Line: 1, Name: label}}
}

// Parse consumes every token and returns the root of the parse tree.
func (p *T) Parse() (n *tree.Node, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(*Error)
		if !ok {
			panic(r)
		}

		n = nil
		err = e
	}()

	n = &tree.Node{Tag: tree.Root, Source: p.last}

	for p.peek() != nil {
		n.Children = append(n.Children, p.expression())
	}

	return n, nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) fail(incomplete bool, message string) {
	panic(&Error{
		Incomplete: incomplete,
		Message:    message,
		Source:     p.last,
	})
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()
	if t != nil {
		p.last = *t.Source()
	}

	p.token = t
	p.ahead = 1

	return t
}

// T state functions.

// <expression> ::= Number | Symbol | String | Comment | <list> .
func (p *T) expression() *tree.Node {
	t := p.peek()

	switch {
	case t.Is('('):
		return p.list(tree.SExpr, ')')
	case t.Is('{'):
		return p.list(tree.QExpr, '}')
	case t.Is(')', '}'):
		p.fail(false, "unexpected '"+t.Value()+"'")
	case t.Is(token.Unterminated):
		p.fail(true, "unterminated string")
	case t.Is(token.Error):
		p.fail(false, "unexpected character '"+t.Value()+"'")
	}

	p.consume()

	return leaf(t)
}

// <list> ::= '(' <expression>* ')' | '{' <expression>* '}' .
func (p *T) list(tag string, closing token.Class) *tree.Node {
	n := &tree.Node{Tag: tag, Source: *p.peek().Source()}
	n.Children = append(n.Children, leaf(p.consume()))

	for {
		t := p.peek()
		if t == nil {
			p.fail(true, "expected "+closing.String()+" got end of input")
		}

		if t.Is(closing) {
			n.Children = append(n.Children, leaf(p.consume()))

			return n
		}

		n.Children = append(n.Children, p.expression())
	}
}

func leaf(t *token.T) *tree.Node {
	tag := tree.Char

	switch t.Class() {
	case token.Comment:
		tag = tree.Comment
	case token.Number:
		tag = tree.Number
	case token.String:
		tag = tree.String
	case token.Symbol:
		tag = tree.Symbol
	}

	return &tree.Node{Tag: tag, Contents: t.Value(), Source: *t.Source()}
}
