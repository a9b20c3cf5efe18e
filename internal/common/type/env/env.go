// Released under an MIT license. See LICENSE.

// Package env provides mlisp's environment type.
package env

import (
	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/mlisp/internal/common/struct/hash"
	"github.com/michaelmacinnis/mlisp/internal/common/type/builtin"
	"github.com/michaelmacinnis/mlisp/internal/common/type/errstr"
)

// T (env) maps names to values and is chained to a previous env.
// Names that cannot be redefined are recorded in the outermost env.
type T struct {
	logger    *log.Logger
	previous  scope.I
	private   *hash.T
	protected map[string]bool
}

type env = T

// New creates a new env.
func New(previous scope.I) scope.I {
	return &env{
		previous: previous,
		private:  hash.New(),
	}
}

// Global creates a new outermost env that logs to l.
func Global(l *log.Logger) scope.I {
	return &env{
		logger:  l,
		private: hash.New(),
	}
}

// Copy creates a copy of the env e. Every value is copied but the
// copy is chained to the same previous env.
func (e *env) Copy() scope.I {
	c := &env{
		logger:   e.logger,
		previous: e.previous,
		private:  e.private.Copy(),
	}

	if e.protected != nil {
		c.protected = make(map[string]bool, len(e.protected))
		for k := range e.protected {
			c.protected[k] = true
		}
	}

	return c
}

// Bind associates the name k with the cell v in the env e. Protected
// names are not checked. Bind is used for function arguments.
func (e *env) Bind(k string, v cell.I) {
	e.private.Set(k, v)
}

// Builtin returns the name bound to the builtin c, searching the env e
// and then each env it is chained to.
func (e *env) Builtin(c cell.I) (string, bool) {
	if !builtin.Is(c) {
		return "", false
	}

	name := ""
	found := false

	e.private.Each(func(k string, v cell.I) bool {
		if v.Equal(c) {
			name = k
			found = true
		}

		return !found
	})

	if found || e.previous == nil {
		return name, found
	}

	return e.previous.Builtin(c)
}

// Define associates the name k with the cell v in the env e.
func (e *env) Define(k string, v cell.I) error {
	if scope.Root(e).Protected(k) {
		return &ProtectedError{Symbol: k}
	}

	e.private.Set(k, v)

	return nil
}

// DefineGlobal associates the name k with the cell v in the outermost env.
func (e *env) DefineGlobal(k string, v cell.I) error {
	return scope.Root(e).Define(k, v)
}

// Enclosing returns the enclosing scope.
func (e *env) Enclosing() scope.I {
	return e.previous
}

// Frame returns a scope that shares the names defined in e but is chained
// to caller. Names defined in the frame are visible to e.
func (e *env) Frame(caller scope.I) scope.I {
	return &env{
		previous: caller,
		private:  e.private,
	}
}

// Logger returns the logger of the nearest env in the chain that has one.
func (e *env) Logger() *log.Logger {
	if e.logger != nil {
		return e.logger
	}

	if e.previous != nil {
		return e.previous.Logger()
	}

	return log.StandardLogger()
}

// Lookup returns a copy of the value associated with the name k. If no
// value is associated with k an error cell is returned.
func (e *env) Lookup(k string) cell.I {
	if v := e.private.Get(k); v != nil {
		return v.Copy()
	}

	if e.previous != nil {
		return e.previous.Lookup(k)
	}

	return errstr.New("Unbound symbol: '" + k + "'")
}

// Protect prevents the name k from being redefined.
func (e *env) Protect(k string) {
	if e.previous != nil {
		e.previous.Protect(k)

		return
	}

	if e.protected == nil {
		e.protected = map[string]bool{}
	}

	e.protected[k] = true
}

// Protected returns true if the name k cannot be redefined in e.
func (e *env) Protected(k string) bool {
	return e.protected[k]
}

// ProtectedError is returned when an attempt is made to redefine a
// protected name.
type ProtectedError struct {
	Symbol string
}

func (p *ProtectedError) Error() string {
	return "Cannot redefine builtin '" + p.Symbol + "'."
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a scope.
	_ = scope.I(&t)
}
