// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/mlisp/internal/common/type/closure"
	"github.com/michaelmacinnis/mlisp/internal/common/type/env"
	"github.com/michaelmacinnis/mlisp/internal/common/type/errstr"
	"github.com/michaelmacinnis/mlisp/internal/common/type/list"
	"github.com/michaelmacinnis/mlisp/internal/common/type/sym"
	"github.com/michaelmacinnis/mlisp/internal/common/validate"
	"github.com/michaelmacinnis/mlisp/internal/engine/eval"
)

func def(s scope.I, args *list.T) cell.I {
	return bind("def", s.DefineGlobal, s, args)
}

func lambda(_ scope.I, args *list.T) cell.I {
	if err := validate.Count("lambda", args, 2); err != nil {
		return err
	}

	if err := validate.All("lambda", args, validate.QExpr); err != nil {
		return err
	}

	formals := list.To(args.Pop(0))
	if err := symbols("lambda", formals); err != nil {
		return err
	}

	if err := eval.Variadic(formals); err != nil {
		return err
	}

	return closure.New(env.New(nil), formals, list.To(args.Pop(0)))
}

func put(s scope.I, args *list.T) cell.I {
	return bind("=", s.Define, s, args)
}

func bind(name string, define func(string, cell.I) error, s scope.I, args *list.T) cell.I {
	if err := validate.Min(name, args, 1); err != nil {
		return err
	}

	if err := validate.Type(name, args, 0, validate.QExpr); err != nil {
		return err
	}

	names := list.To(args.Pop(0))
	if err := symbols(name, names); err != nil {
		return err
	}

	if names.Len() != args.Len() {
		return errstr.Errorf(
			"Function '%s' passed %d symbols but %d values.",
			name, names.Len(), args.Len(),
		)
	}

	root := scope.Root(s)
	for _, c := range names.Cells() {
		if k := sym.To(c).String(); root.Protected(k) {
			return errstr.New((&env.ProtectedError{Symbol: k}).Error())
		}
	}

	for i, c := range names.Cells() {
		if err := define(sym.To(c).String(), args.Get(i)); err != nil {
			return errstr.New(err.Error())
		}
	}

	return list.NewS()
}

func symbols(name string, l *list.T) cell.I {
	for _, c := range l.Cells() {
		if !validate.Symbol.Is(c) {
			return errstr.New(fmt.Sprintf(
				"Function '%s' cannot define non-symbol. Expected %s, got %s.",
				name, validate.Symbol.Name, c.Name(),
			))
		}
	}

	return nil
}
