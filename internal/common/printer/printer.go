// Released under an MIT license. See LICENSE.

// Package printer renders mlisp values as text.
package printer

import (
	"strings"

	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/mlisp/internal/common/type/builtin"
	"github.com/michaelmacinnis/mlisp/internal/common/type/closure"
	"github.com/michaelmacinnis/mlisp/internal/common/type/list"
	"github.com/michaelmacinnis/mlisp/internal/common/type/str"
)

// Display renders c for people. A string is written without quotes.
// Anything else, including strings nested in lists, renders as Repr.
func Display(s scope.I, c cell.I) string {
	if str.Is(c) {
		return str.To(c).String()
	}

	return Repr(s, c)
}

// Repr renders c so that reading the text back produces an equal value.
// Builtins are named using the bindings visible from s.
func Repr(s scope.I, c cell.I) string {
	var b strings.Builder

	repr(&b, s, c)

	return b.String()
}

func repr(b *strings.Builder, s scope.I, c cell.I) {
	switch {
	case builtin.Is(c):
		if s != nil {
			if name, ok := s.Builtin(c); ok {
				b.WriteString("<function '" + name + "'>")

				return
			}
		}

		b.WriteString(builtin.To(c).Literal())

	case closure.Is(c):
		f := closure.To(c)

		b.WriteString("(lambda ")
		repr(b, s, f.Formals())
		b.WriteByte(' ')
		repr(b, s, f.Body())
		b.WriteByte(')')

	case list.Is(c):
		l := list.To(c)
		open, closing := l.Delimiters()

		b.WriteString(open)

		for i, v := range l.Cells() {
			if i > 0 {
				b.WriteByte(' ')
			}

			repr(b, s, v)
		}

		b.WriteString(closing)

	default:
		b.WriteString(literal.String(c))
	}
}
