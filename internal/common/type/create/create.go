// Released under an MIT license. See LICENSE.

// Package create provides helper functions for creating mlisp types.
package create

import (
	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/type/num"
)

// Bool returns the mlisp value corresponding to the value of the boolean a.
func Bool(a bool) cell.I {
	if a {
		return num.Int(1)
	}

	return num.Int(0)
}
