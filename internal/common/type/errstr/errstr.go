// Released under an MIT license. See LICENSE.

// Package errstr provides mlisp's error value type. Errors are ordinary
// values: they are returned, stored and compared like any other cell.
package errstr

import (
	"fmt"

	"github.com/michaelmacinnis/mlisp/internal/common"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/literal"
)

// Name is the type name used when reporting type errors.
const Name = "error"

// T (errstr) is a string error.
type T string

type errstr = T

// New creates a new errstr from the string v.
func New(v string) cell.I {
	e := errstr(v)

	return &e
}

// Errorf creates a new errstr using a format string.
func Errorf(format string, a ...interface{}) cell.I {
	return New(fmt.Sprintf(format, a...))
}

// Copy returns e. An errstr is never modified after it is created.
func (e *errstr) Copy() cell.I {
	return e
}

// Equal returns true if the cell c is an errstr with the same message.
func (e *errstr) Equal(c cell.I) bool {
	return Is(c) && *e == *To(c)
}

// Literal returns the literal representation of the errstr e.
func (e *errstr) Literal() string {
	return e.String()
}

// Message returns the message wrapped by the errstr e.
func (e *errstr) Message() string {
	return string(*e)
}

// Name returns the name of the errstr type.
func (e *errstr) Name() string {
	return Name
}

// String returns the text of the errstr e as it is displayed.
func (e *errstr) String() string {
	return "Error: " + e.Message()
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if e, ok := c.(*T); ok {
		return e
	}

	panic("not a " + Name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t errstr

	// The errstr type is a cell.
	_ = cell.I(&t)

	// The errstr type has a literal representation.
	_ = literal.I(&t)

	// The errstr type is a stringer.
	_ = common.Stringer(&t)
}
