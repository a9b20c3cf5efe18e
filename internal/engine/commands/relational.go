// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/mlisp/internal/common/type/builtin"
	"github.com/michaelmacinnis/mlisp/internal/common/type/create"
	"github.com/michaelmacinnis/mlisp/internal/common/type/list"
	"github.com/michaelmacinnis/mlisp/internal/common/type/num"
	"github.com/michaelmacinnis/mlisp/internal/common/validate"
)

func compare(name string, equal bool) builtin.Func {
	return func(_ scope.I, args *list.T) cell.I {
		if err := validate.Count(name, args, 2); err != nil {
			return err
		}

		return create.Bool(args.Get(0).Equal(args.Get(1)) == equal)
	}
}

func ordered(name string, cmp func(x, y float64) bool) builtin.Func {
	return func(_ scope.I, args *list.T) cell.I {
		if err := validate.Min(name, args, 2); err != nil {
			return err
		}

		if err := validate.All(name, args, validate.Number); err != nil {
			return err
		}

		v := args.Cells()
		for i := 1; i < len(v); i++ {
			if !cmp(num.To(v[i-1]).Float(), num.To(v[i]).Float()) {
				return create.Bool(false)
			}
		}

		return create.Bool(true)
	}
}

func ge(x, y float64) bool {
	return x >= y
}

func gt(x, y float64) bool {
	return x > y
}

func le(x, y float64) bool {
	return x <= y
}

func lt(x, y float64) bool {
	return x < y
}
