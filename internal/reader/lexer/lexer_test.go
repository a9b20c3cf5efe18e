// Released under an MIT license. See LICENSE.

package lexer

import (
	"testing"

	"github.com/michaelmacinnis/mlisp/internal/common/struct/loc"
	"github.com/michaelmacinnis/mlisp/internal/common/struct/token"
)

func TestAtoms(t *testing.T) {
	h := setup(t, "Atoms")

	h.scan("-5 1.5 - 1a 1. ...",
		h.other(token.Number, "-5"),
		h.space(1),
		h.other(token.Number, "1.5"),
		h.space(1),
		h.symbol("-"),
		h.space(1),
		h.symbol("1a"),
		h.space(1),
		h.symbol("1."),
		h.space(1),
		h.symbol("..."),
		nil,
	)
}

func TestExponents(t *testing.T) {
	h := setup(t, "Exponents")

	h.scan("1e+08 3.6288e+06 2E-3 1e e5",
		h.other(token.Number, "1e+08"),
		h.space(1),
		h.other(token.Number, "3.6288e+06"),
		h.space(1),
		h.other(token.Number, "2E-3"),
		h.space(1),
		h.symbol("1e"),
		h.space(1),
		h.symbol("e5"),
		nil,
	)
}

func TestComment(t *testing.T) {
	h := setup(t, "Comment")

	h.scan("; note\nx",
		h.other(token.Comment, "; note"),
		h.newline(),
		h.symbol("x"),
		nil,
	)
}

func TestDelimiters(t *testing.T) {
	h := setup(t, "Delimiters")

	h.scan("(+ 1 {2})",
		h.literal("("),
		h.symbol("+"),
		h.space(1),
		h.other(token.Number, "1"),
		h.space(1),
		h.literal("{"),
		h.other(token.Number, "2"),
		h.literal("}"),
		h.literal(")"),
		nil,
	)
}

func TestDefinition(t *testing.T) {
	h := setup(t, "Definition")

	h.scan("def {x}",
		h.symbol("def"),
		h.space(1),
		h.literal("{"),
		h.symbol("x"),
		h.literal("}"),
		nil,
	)
}

func TestString(t *testing.T) {
	h := setup(t, "String")

	h.scan(`"a\"b" x`,
		h.other(token.String, `"a\"b"`),
		h.space(1),
		h.symbol("x"),
		nil,
	)
}

func TestSymbolCharacters(t *testing.T) {
	h := setup(t, "SymbolCharacters")

	h.scan(`a_Z9+-*/\=<>!&%.^`,
		h.symbol(`a_Z9+-*/\=<>!&%.^`),
		nil,
	)
}

func TestUnexpected(t *testing.T) {
	h := setup(t, "Unexpected")

	h.scan("#x",
		h.other(token.Error, "#"),
		h.symbol("x"),
		nil,
	)
}

func TestUnterminated(t *testing.T) {
	h := setup(t, "Unterminated")

	h.scan(`"abc`,
		h.other(token.Unterminated, `"abc`),
		nil,
	)
}

type harness struct {
	index  int
	lexer  *T
	source loc.T
	t      *testing.T
}

var skip = token.New(token.Error, "", loc.T{}) //nolint:gochecknoglobals

func setup(t *testing.T, label string) *harness {
	return &harness{
		index: 1,
		lexer: New(label),
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		t: t,
	}
}

func (h *harness) expect(tokens ...*token.T) {
	for _, e := range tokens {
		if e == skip {
			continue
		}

		a := h.lexer.Token()

		switch {
		case a == e:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case *a != *e:
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

func (h *harness) literal(s string) *token.T {
	return h.other(token.Class(s[0]), s)
}

func (h *harness) newline() *token.T {
	h.index = 1
	h.source.Line++

	return skip
}

func (h *harness) other(id token.Class, s string) *token.T {
	h.source.Char = h.index
	h.index += len(s)

	return token.New(id, s, h.source)
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.lexer.Scan(s)
	h.expect(tokens...)
}

func (h *harness) space(n int) *token.T {
	h.index += n

	return skip
}

func (h *harness) symbol(s string) *token.T {
	return h.other(token.Symbol, s)
}
