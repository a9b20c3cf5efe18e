// Released under an MIT license. See LICENSE.

package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/mlisp/internal/common/printer"
	"github.com/michaelmacinnis/mlisp/internal/common/type/builtin"
	"github.com/michaelmacinnis/mlisp/internal/common/type/errstr"
	"github.com/michaelmacinnis/mlisp/internal/common/type/list"
	"github.com/michaelmacinnis/mlisp/internal/common/type/str"
	"github.com/michaelmacinnis/mlisp/internal/common/validate"
	"github.com/michaelmacinnis/mlisp/internal/engine/eval"
	"github.com/michaelmacinnis/mlisp/internal/reader"
)

func display(h Host, name string, newline bool) builtin.Func {
	return func(s scope.I, args *list.T) cell.I {
		v := make([]string, args.Len())
		for i, c := range args.Cells() {
			v[i] = printer.Display(s, c)
		}

		text := strings.Join(v, " ")
		if newline {
			text += "\n"
		}

		if _, err := io.WriteString(h.Stdout(), text); err != nil {
			h.Logger().WithError(err).WithField("builtin", name).Warn("write failed")
		}

		return list.NewS()
	}
}

func load(h Host) builtin.Func {
	return func(s scope.I, args *list.T) cell.I {
		if err := validate.Count("load", args, 1); err != nil {
			return err
		}

		if err := validate.Type("load", args, 0, validate.String); err != nil {
			return err
		}

		path := str.To(args.Get(0)).String()

		forms, err := reader.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return errstr.New("Unable to open file: " + path)
		} else if err != nil {
			return errstr.New("Error loading file: " + err.Error())
		}

		h.Logger().WithFields(log.Fields{
			"file":  path,
			"forms": forms.Len(),
		}).Debug("loading")

		Run(h, s, forms)

		return list.NewS()
	}
}

// Run evaluates each form in s. Errors are displayed and evaluation
// continues with the next form.
func Run(h Host, s scope.I, forms *list.T) {
	for forms.Len() > 0 {
		v := eval.Eval(s, forms.Pop(0))
		if errstr.Is(v) {
			fmt.Fprintln(h.Stdout(), printer.Display(s, v))
		}
	}
}

func makeError(_ scope.I, args *list.T) cell.I {
	if err := validate.Count("error", args, 1); err != nil {
		return err
	}

	if err := validate.Type("error", args, 0, validate.String); err != nil {
		return err
	}

	return errstr.New(str.To(args.Get(0)).String())
}

func repr(s scope.I, args *list.T) cell.I {
	if err := validate.Count("repr", args, 1); err != nil {
		return err
	}

	return str.New(printer.Repr(s, args.Get(0)))
}
