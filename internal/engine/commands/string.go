// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/mlisp/internal/common"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/mlisp/internal/common/type/create"
	"github.com/michaelmacinnis/mlisp/internal/common/type/errstr"
	"github.com/michaelmacinnis/mlisp/internal/common/type/list"
	"github.com/michaelmacinnis/mlisp/internal/common/type/str"
	"github.com/michaelmacinnis/mlisp/internal/common/validate"
)

func lower(_ scope.I, args *list.T) cell.I {
	v, err := stringArgs("lower", args, 1)
	if err != nil {
		return err
	}

	return str.New(strings.ToLower(v[0]))
}

func match(_ scope.I, args *list.T) cell.I {
	v, err := stringArgs("match", args, 2)
	if err != nil {
		return err
	}

	ok, e := adapted.Match(v[0], v[1])
	if e != nil {
		return errstr.New("Function 'match' passed invalid pattern. " + e.Error())
	}

	return create.Bool(ok)
}

func sreplace(_ scope.I, args *list.T) cell.I {
	v, err := stringArgs("replace", args, 3)
	if err != nil {
		return err
	}

	return str.New(strings.ReplaceAll(v[0], v[1], v[2]))
}

func trimPrefix(_ scope.I, args *list.T) cell.I {
	v, err := stringArgs("trim-prefix", args, 2)
	if err != nil {
		return err
	}

	return str.New(strings.TrimPrefix(v[0], v[1]))
}

func trimSuffix(_ scope.I, args *list.T) cell.I {
	v, err := stringArgs("trim-suffix", args, 2)
	if err != nil {
		return err
	}

	return str.New(strings.TrimSuffix(v[0], v[1]))
}

func upper(_ scope.I, args *list.T) cell.I {
	v, err := stringArgs("upper", args, 1)
	if err != nil {
		return err
	}

	return str.New(strings.ToUpper(v[0]))
}

func stringArgs(name string, args *list.T, n int) ([]string, cell.I) {
	if err := validate.Count(name, args, n); err != nil {
		return nil, err
	}

	if err := validate.All(name, args, validate.String); err != nil {
		return nil, err
	}

	v := make([]string, n)
	for i, c := range args.Cells() {
		v[i] = common.String(c)
	}

	return v, nil
}
