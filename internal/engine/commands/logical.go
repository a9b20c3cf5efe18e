// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/truth"
	"github.com/michaelmacinnis/mlisp/internal/common/type/create"
	"github.com/michaelmacinnis/mlisp/internal/common/type/list"
	"github.com/michaelmacinnis/mlisp/internal/common/validate"
	"github.com/michaelmacinnis/mlisp/internal/engine/eval"
)

func and(_ scope.I, args *list.T) cell.I {
	return binary("and", args, func(x, y bool) bool {
		return x && y
	})
}

func ifElse(s scope.I, args *list.T) cell.I {
	if err := validate.Min("if", args, 2); err != nil {
		return err
	}

	if err := validate.Max("if", args, 3); err != nil {
		return err
	}

	for i, k := range []validate.Kind{validate.Number, validate.QExpr, validate.QExpr} {
		if i == args.Len() {
			break
		}

		if err := validate.Type("if", args, i, k); err != nil {
			return err
		}
	}

	branch := 1
	if !truth.Value(args.Get(0)) {
		branch = 2
	}

	if branch == args.Len() {
		return list.NewS()
	}

	return eval.SExpr(s, list.To(args.Take(branch)).Unquote())
}

func not(_ scope.I, args *list.T) cell.I {
	if err := validate.Count("not", args, 1); err != nil {
		return err
	}

	if err := validate.Type("not", args, 0, validate.Number); err != nil {
		return err
	}

	return create.Bool(!truth.Value(args.Get(0)))
}

func or(_ scope.I, args *list.T) cell.I {
	return binary("or", args, func(x, y bool) bool {
		return x || y
	})
}

func binary(name string, args *list.T, op func(x, y bool) bool) cell.I {
	if err := validate.Count(name, args, 2); err != nil {
		return err
	}

	if err := validate.All(name, args, validate.Number); err != nil {
		return err
	}

	return create.Bool(op(truth.Value(args.Get(0)), truth.Value(args.Get(1))))
}
