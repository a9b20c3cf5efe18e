// Released under an MIT license. See LICENSE.

// Package scope defines the interface for mlisp environments.
package scope

import (
	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
)

// I (scope) maps names to values and is chained to an enclosing scope.
type I interface {
	Copy() I
	Enclosing() I
	Frame(caller I) I

	Bind(k string, v cell.I)
	Define(k string, v cell.I) error
	DefineGlobal(k string, v cell.I) error
	Lookup(k string) cell.I

	Builtin(c cell.I) (string, bool)
	Logger() *log.Logger
	Protect(k string)
	Protected(k string) bool
}

// Root returns the outermost scope enclosing s.
func Root(s I) I {
	for s.Enclosing() != nil {
		s = s.Enclosing()
	}

	return s
}
