// Released under an MIT license. See LICENSE.

// Package builtin provides mlisp's native function type.
package builtin

import (
	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/mlisp/internal/common/type/list"
)

// Name is the type name used when reporting type errors.
const Name = "function"

// Func is the signature shared by all native functions. A Func owns args.
type Func func(s scope.I, args *list.T) cell.I

// T (builtin) wraps a native function.
type T struct {
	fn   Func
	name string
}

type builtin = T

// New creates a new builtin. The name is used for error messages.
func New(name string, fn Func) cell.I {
	return &builtin{fn: fn, name: name}
}

// Call invokes the builtin b with the arguments args in the scope s.
func (b *builtin) Call(s scope.I, args *list.T) cell.I {
	return b.fn(s, args)
}

// Copy returns b. A builtin is never modified after it is created.
func (b *builtin) Copy() cell.I {
	return b
}

// Equal returns true if c is the same builtin as b.
func (b *builtin) Equal(c cell.I) bool {
	return Is(c) && b == To(c)
}

// Literal returns the literal representation of the builtin b.
func (b *builtin) Literal() string {
	return "<builtin>"
}

// Name returns the type name for the builtin b.
func (b *builtin) Name() string {
	return Name
}

// Native returns the name the builtin b was registered with.
func (b *builtin) Native() string {
	return b.name
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + Name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t builtin

	// The builtin type is a cell.
	_ = cell.I(&t)

	// The builtin type has a literal representation.
	_ = literal.I(&t)
}
