// Released under an MIT license. See LICENSE.

// Package list provides mlisp's two list types. An S-expression is a list
// that is evaluated as a call. A Q-expression is a quoted list that is
// never evaluated automatically. Both share one representation and differ
// only in their tag, so converting between them never copies elements.
package list

import (
	"strings"

	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/literal"
)

// Type names used when reporting type errors.
const (
	QName = "Q-Expression"
	SName = "S-Expression"
)

// T (list) is an ordered sequence of cells.
type T struct {
	cells  []cell.I
	quoted bool
}

type list = T

// NewQ creates a new Q-expression containing elements.
func NewQ(elements ...cell.I) *T {
	return &list{cells: elements, quoted: true}
}

// NewS creates a new S-expression containing elements.
func NewS(elements ...cell.I) *T {
	return &list{cells: elements}
}

// Add appends v to the list l and returns l.
func (l *list) Add(v cell.I) *list {
	l.cells = append(l.cells, v)

	return l
}

// Cells returns the elements of the list l. The slice is owned by l.
func (l *list) Cells() []cell.I {
	return l.cells
}

// Copy creates a deep copy of the list l.
func (l *list) Copy() cell.I {
	c := &list{
		cells:  make([]cell.I, len(l.cells)),
		quoted: l.quoted,
	}

	for i, v := range l.cells {
		c.cells[i] = v.Copy()
	}

	return c
}

// Equal returns true if c is a list of the same kind with equal elements.
func (l *list) Equal(c cell.I) bool {
	o, ok := c.(*list)
	if !ok || o.quoted != l.quoted || len(o.cells) != len(l.cells) {
		return false
	}

	for i, v := range l.cells {
		if !v.Equal(o.cells[i]) {
			return false
		}
	}

	return true
}

// Get returns the element at index i in the list l.
func (l *list) Get(i int) cell.I {
	return l.cells[i]
}

// Join moves every element of o onto the end of the list l and returns l.
// The list o is left empty.
func (l *list) Join(o *list) *list {
	l.cells = append(l.cells, o.cells...)
	o.cells = nil

	return l
}

// Len returns the number of elements in the list l.
func (l *list) Len() int {
	return len(l.cells)
}

// Literal returns the literal representation of the list l.
func (l *list) Literal() string {
	open, closing := l.Delimiters()

	s := make([]string, len(l.cells))
	for i, v := range l.cells {
		s[i] = literal.String(v)
	}

	return open + strings.Join(s, " ") + closing
}

// Delimiters returns the opening and closing brackets for the list l.
func (l *list) Delimiters() (string, string) {
	if l.quoted {
		return "{", "}"
	}

	return "(", ")"
}

// Name returns the type name for the list l.
func (l *list) Name() string {
	if l.quoted {
		return QName
	}

	return SName
}

// Pop removes the element at index i from the list l and returns it.
// An index out of range will cause a panic.
func (l *list) Pop(i int) cell.I {
	v := l.cells[i]

	copy(l.cells[i:], l.cells[i+1:])
	l.cells[len(l.cells)-1] = nil
	l.cells = l.cells[:len(l.cells)-1]

	return v
}

// Quote relabels the list l as a Q-expression and returns it.
func (l *list) Quote() *list {
	l.quoted = true

	return l
}

// Quoted returns true if the list l is a Q-expression.
func (l *list) Quoted() bool {
	return l.quoted
}

// Set replaces the element at index i in the list l with v.
func (l *list) Set(i int, v cell.I) {
	l.cells[i] = v
}

// String returns the text of the list l.
func (l *list) String() string {
	return l.Literal()
}

// Take removes and returns the element at index i. The rest of the list
// l is discarded.
func (l *list) Take(i int) cell.I {
	v := l.Pop(i)

	l.cells = nil

	return v
}

// Unquote relabels the list l as an S-expression and returns it.
func (l *list) Unquote() *list {
	l.quoted = false

	return l
}

// Is returns true if c is a list of either kind.
func Is(c cell.I) bool {
	_, ok := c.(*list)

	return ok
}

// IsQ returns true if c is a Q-expression.
func IsQ(c cell.I) bool {
	l, ok := c.(*list)

	return ok && l.quoted
}

// IsS returns true if c is an S-expression.
func IsS(c cell.I) bool {
	l, ok := c.(*list)

	return ok && !l.quoted
}

// To returns a list if c is a list; Otherwise it panics.
func To(c cell.I) *list {
	if l, ok := c.(*list); ok {
		return l
	}

	panic(c.Name() + " cannot be used in a list context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)

	// The list type has a literal representation.
	_ = literal.I(&t)
}
