// Released under an MIT license. See LICENSE.

// Package commands provides mlisp's builtin functions.
package commands

import (
	"io"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/mlisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/mlisp/internal/common/type/builtin"
)

// Host is what the input and output builtins need from their engine.
type Host interface {
	Logger() *log.Logger
	Stdout() io.Writer
}

// Functions returns a mapping of names to builtins that only operate on
// their arguments.
func Functions() map[string]builtin.Func {
	return map[string]builtin.Func{
		// Arithmetic.
		"+":   arithmetic("+", add),
		"-":   arithmetic("-", sub),
		"*":   arithmetic("*", mul),
		"/":   arithmetic("/", div),
		"%":   arithmetic("%", mod),
		"^":   arithmetic("^", pow),
		"max": arithmetic("max", maximum),
		"min": arithmetic("min", minimum),

		// Relational.
		">":  ordered(">", gt),
		">=": ordered(">=", ge),
		"<":  ordered("<", lt),
		"<=": ordered("<=", le),
		"==": compare("==", true),
		"!=": compare("!=", false),

		// Logical.
		"and": and,
		"not": not,
		"or":  or,
		"if":  ifElse,

		// Lists.
		"cons": cons,
		"eval": evalQ,
		"head": head,
		"join": join,
		"list": makeList,
		"tail": tail,

		// Variables.
		"=":      put,
		"def":    def,
		"lambda": lambda,

		// Strings.
		"error":       makeError,
		"lower":       lower,
		"match":       match,
		"replace":     sreplace,
		"repr":        repr,
		"trim-prefix": trimPrefix,
		"trim-suffix": trimSuffix,
		"upper":       upper,
	}
}

// Commands returns a mapping of names to builtins that use the host h.
func Commands(h Host) map[string]builtin.Func {
	return map[string]builtin.Func{
		"load":    load(h),
		"print":   display(h, "print", false),
		"println": display(h, "println", true),
	}
}

// Register defines every builtin in the scope s. If protect is true the
// names of the builtins cannot be redefined.
func Register(s scope.I, h Host, protect bool) {
	fns := Functions()
	for k, v := range Commands(h) {
		fns[k] = v
	}

	names := make([]string, 0, len(fns))
	for k := range fns {
		names = append(names, k)
	}

	sort.Strings(names)

	for _, k := range names {
		if err := s.Define(k, builtin.New(k, fns[k])); err != nil {
			panic(err.Error())
		}

		if protect {
			s.Protect(k)
		}
	}
}
