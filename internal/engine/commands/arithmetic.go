// Released under an MIT license. See LICENSE.

package commands

import (
	"math"

	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/mlisp/internal/common/type/builtin"
	"github.com/michaelmacinnis/mlisp/internal/common/type/errstr"
	"github.com/michaelmacinnis/mlisp/internal/common/type/list"
	"github.com/michaelmacinnis/mlisp/internal/common/type/num"
	"github.com/michaelmacinnis/mlisp/internal/common/validate"
)

// An operator combines two numbers. A non-nil cell is an error.
type operator func(x, y float64) (float64, cell.I)

func arithmetic(name string, op operator) builtin.Func {
	return func(_ scope.I, args *list.T) cell.I {
		if err := validate.Min(name, args, 1); err != nil {
			return err
		}

		if err := validate.All(name, args, validate.Number); err != nil {
			return err
		}

		x := num.To(args.Pop(0)).Float()

		if name == "-" && args.Len() == 0 {
			return num.New(-x)
		}

		for args.Len() > 0 {
			y := num.To(args.Pop(0)).Float()

			var err cell.I

			x, err = op(x, y)
			if err != nil {
				return err
			}

			if math.IsInf(x, 0) || math.IsNaN(x) {
				return errstr.Errorf("Function '%s' result is not a finite number.", name)
			}
		}

		return num.New(x)
	}
}

func add(x, y float64) (float64, cell.I) {
	return x + y, nil
}

func div(x, y float64) (float64, cell.I) {
	if y == 0 {
		return 0, errstr.New("Division by zero")
	}

	return x / y, nil
}

func maximum(x, y float64) (float64, cell.I) {
	return math.Max(x, y), nil
}

func minimum(x, y float64) (float64, cell.I) {
	return math.Min(x, y), nil
}

func mod(x, y float64) (float64, cell.I) {
	if y == 0 {
		return 0, errstr.New("Division by zero")
	}

	return math.Mod(x, y), nil
}

func mul(x, y float64) (float64, cell.I) {
	return x * y, nil
}

func pow(x, y float64) (float64, cell.I) {
	return math.Pow(x, y), nil
}

func sub(x, y float64) (float64, cell.I) {
	return x - y, nil
}
