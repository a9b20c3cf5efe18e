// Released under an MIT license. See LICENSE.

// Package eval provides mlisp's evaluator.
package eval

import (
	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/mlisp/internal/common/printer"
	"github.com/michaelmacinnis/mlisp/internal/common/type/builtin"
	"github.com/michaelmacinnis/mlisp/internal/common/type/closure"
	"github.com/michaelmacinnis/mlisp/internal/common/type/errstr"
	"github.com/michaelmacinnis/mlisp/internal/common/type/list"
	"github.com/michaelmacinnis/mlisp/internal/common/type/sym"
)

const misplaced = "Function 'lambda' format invalid. " +
	"Symbol '" + closure.Variadic + "' not followed by single symbol."

// Eval evaluates c in the scope s. Symbols are looked up and
// S-expressions are reduced. Everything else evaluates to itself.
func Eval(s scope.I, c cell.I) cell.I {
	switch {
	case sym.Is(c):
		return s.Lookup(sym.To(c).String())
	case list.IsS(c):
		return SExpr(s, list.To(c))
	}

	return c
}

// SExpr reduces the S-expression l in the scope s. The list l is consumed.
func SExpr(s scope.I, l *list.T) cell.I {
	for i, c := range l.Cells() {
		v := Eval(s, c)
		if errstr.Is(v) {
			return v
		}

		l.Set(i, v)
	}

	switch l.Len() {
	case 0:
		return l
	case 1:
		return l.Take(0)
	}

	f := l.Pop(0)
	if !IsFunction(f) {
		return errstr.New("First element is not a function: " + printer.Repr(s, f))
	}

	return Apply(s, f, l)
}

// Apply calls the function f with args. The caller's scope is s.
func Apply(s scope.I, f cell.I, args *list.T) cell.I {
	if builtin.Is(f) {
		b := builtin.To(f)

		if logger := s.Logger(); logger.IsLevelEnabled(log.TraceLevel) {
			logger.WithFields(log.Fields{
				"args":    printer.Repr(s, args),
				"builtin": b.Native(),
			}).Trace("applying builtin")
		}

		return b.Call(s, args)
	}

	return call(s, closure.To(f), args)
}

// IsFunction returns true if c can be applied.
func IsFunction(c cell.I) bool {
	return builtin.Is(c) || closure.Is(c)
}

// Variadic returns an error if "..." appears in formals anywhere other
// than immediately before the last formal. Otherwise it returns nil.
func Variadic(formals *list.T) cell.I {
	for i, c := range formals.Cells() {
		if sym.To(c).String() == closure.Variadic && i != formals.Len()-2 {
			return errstr.New(misplaced)
		}
	}

	return nil
}

func call(s scope.I, c *closure.T, args *list.T) cell.I {
	formals := c.Formals()
	total := formals.Len()
	given := args.Len()

	if logger := s.Logger(); logger.IsLevelEnabled(log.TraceLevel) {
		logger.WithFields(log.Fields{
			"args":    printer.Repr(s, args),
			"formals": printer.Repr(s, formals),
		}).Trace("applying closure")
	}

	frame := c.Scope().Frame(s)

	for args.Len() > 0 {
		if formals.Len() == 0 {
			return errstr.Errorf(
				"Function passed too many arguments. Expected %d got %d.",
				total, given,
			)
		}

		k := sym.To(formals.Pop(0)).String()
		if k == closure.Variadic {
			if formals.Len() != 1 {
				return errstr.New(misplaced)
			}

			frame.Bind(sym.To(formals.Pop(0)).String(), list.NewQ().Join(args))

			break
		}

		frame.Bind(k, args.Pop(0))
	}

	if formals.Len() == 2 && sym.To(formals.Get(0)).String() == closure.Variadic {
		formals.Pop(0)

		frame.Bind(sym.To(formals.Pop(0)).String(), list.NewQ())
	}

	if formals.Len() > 0 {
		return c
	}

	body := list.To(c.Body().Copy()).Unquote()

	return SExpr(frame, body)
}
