// Released under an MIT license. See LICENSE.

// Package closure provides mlisp's user defined function type.
package closure

import (
	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/mlisp/internal/common/type/list"
)

const (
	// Name is the type name used when reporting type errors.
	Name = "function"

	// Variadic is the formal that binds all remaining arguments.
	Variadic = "..."
)

// T (closure) is a function created with lambda. Arguments bound by a
// partial application are stored in the closure's own scope.
type T struct {
	body    *list.T
	formals *list.T
	scope   scope.I
}

type closure = T

// New creates a new closure.
func New(s scope.I, formals, body *list.T) cell.I {
	return &closure{
		body:    body,
		formals: formals,
		scope:   s,
	}
}

// Body returns the body of the closure c.
func (c *closure) Body() *list.T {
	return c.body
}

// Copy creates a deep copy of the closure c.
func (c *closure) Copy() cell.I {
	return &closure{
		body:    list.To(c.body.Copy()),
		formals: list.To(c.formals.Copy()),
		scope:   c.scope.Copy(),
	}
}

// Equal returns true if o is a closure with equal formals and body.
func (c *closure) Equal(o cell.I) bool {
	if !Is(o) {
		return false
	}

	t := To(o)

	return c.formals.Equal(t.formals) && c.body.Equal(t.body)
}

// Formals returns the unbound formal parameters of the closure c.
func (c *closure) Formals() *list.T {
	return c.formals
}

// Literal returns the literal representation of the closure c.
func (c *closure) Literal() string {
	return "(lambda " + c.formals.Literal() + " " + c.body.Literal() + ")"
}

// Name returns the type name for the closure c.
func (c *closure) Name() string {
	return Name
}

// Scope returns the scope that holds the closure's bound arguments.
func (c *closure) Scope() scope.I {
	return c.scope
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
	var t closure

	// The closure type is a cell.
	_ = cell.I(&t)

	// The closure type has a literal representation.
	_ = literal.I(&t)
}
