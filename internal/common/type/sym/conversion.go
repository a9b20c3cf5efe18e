// Released under an MIT license. See LICENSE.

package sym

import (
	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
)

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// To returns a sym if c is a sym; Otherwise it panics.
func To(c cell.I) *sym {
	if t, ok := c.(*sym); ok {
		return t
	}

	panic("not a " + Name)
}
