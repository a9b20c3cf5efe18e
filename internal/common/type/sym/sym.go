// Released under an MIT license. See LICENSE.

// Package sym provides mlisp's symbol cell type.
package sym

import (
	"github.com/michaelmacinnis/mlisp/internal/common"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/literal"
)

// Name is the type name used when reporting type errors.
const Name = "symbol"

// T (sym) wraps Go's string type.
type T string

type sym = T

// New creates a sym cell.
func New(v string) cell.I {
	s := sym(v)

	return &s
}

// Copy returns s. Symbols are immutable and may be shared.
func (s *sym) Copy() cell.I {
	return s
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return string(*s)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return Name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
