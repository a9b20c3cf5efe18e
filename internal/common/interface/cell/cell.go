// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all mlisp values.
package cell

// I (cell) is the basic unit of storage in mlisp.
//
// Every cell has exactly one owner. Copy returns a cell that shares no
// mutable state with the original. Immutable cells may return themselves.
type I interface {
	Copy() I
	Equal(c I) bool
	Name() string
}
