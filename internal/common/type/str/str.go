// Released under an MIT license. See LICENSE.

// Package str provides mlisp's string type.
package str

import (
	"strconv"

	"github.com/michaelmacinnis/mlisp/internal/common"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/literal"
)

// Name is the type name used when reporting type errors.
const Name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Copy returns s. A str is never modified after it is created.
func (s *str) Copy() cell.I {
	return s
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the quoted and escaped representation of the str s.
// The escapes produced are the ones the reader understands.
func (s *str) Literal() string {
	return strconv.Quote(string(*s))
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return Name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)
}
