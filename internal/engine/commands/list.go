// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/mlisp/internal/common/type/list"
	"github.com/michaelmacinnis/mlisp/internal/common/validate"
	"github.com/michaelmacinnis/mlisp/internal/engine/eval"
)

func cons(_ scope.I, args *list.T) cell.I {
	if err := validate.Count("cons", args, 2); err != nil {
		return err
	}

	if err := validate.Type("cons", args, 1, validate.QExpr); err != nil {
		return err
	}

	v := args.Pop(0)

	return list.NewQ(v).Join(list.To(args.Take(0)))
}

func evalQ(s scope.I, args *list.T) cell.I {
	if err := validate.Count("eval", args, 1); err != nil {
		return err
	}

	if err := validate.Type("eval", args, 0, validate.QExpr); err != nil {
		return err
	}

	return eval.SExpr(s, list.To(args.Take(0)).Unquote())
}

func head(_ scope.I, args *list.T) cell.I {
	if err := nonEmpty("head", args); err != nil {
		return err
	}

	return list.NewQ(list.To(args.Take(0)).Get(0))
}

func join(_ scope.I, args *list.T) cell.I {
	if err := validate.Min("join", args, 1); err != nil {
		return err
	}

	if err := validate.All("join", args, validate.QExpr); err != nil {
		return err
	}

	joined := list.To(args.Pop(0))
	for args.Len() > 0 {
		joined.Join(list.To(args.Pop(0)))
	}

	return joined
}

func makeList(_ scope.I, args *list.T) cell.I {
	return args.Quote()
}

func tail(_ scope.I, args *list.T) cell.I {
	if err := nonEmpty("tail", args); err != nil {
		return err
	}

	l := list.To(args.Take(0))
	l.Pop(0)

	return l
}

func nonEmpty(name string, args *list.T) cell.I {
	if err := validate.Count(name, args, 1); err != nil {
		return err
	}

	if err := validate.Type(name, args, 0, validate.QExpr); err != nil {
		return err
	}

	return validate.NotEmpty(name, args, 0)
}
