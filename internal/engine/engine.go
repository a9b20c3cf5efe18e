// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed mlisp code.
package engine

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/mlisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/mlisp/internal/common/printer"
	"github.com/michaelmacinnis/mlisp/internal/common/type/env"
	"github.com/michaelmacinnis/mlisp/internal/common/type/list"
	"github.com/michaelmacinnis/mlisp/internal/engine/boot"
	"github.com/michaelmacinnis/mlisp/internal/engine/commands"
	"github.com/michaelmacinnis/mlisp/internal/engine/eval"
	"github.com/michaelmacinnis/mlisp/internal/reader"
)

// T (engine) is a facade in front of the machinery for evaluating mlisp code.
type T struct {
	logger  *log.Logger
	prelude bool
	protect bool
	scope   scope.I
	stdout  io.Writer
}

// Option configures an engine.
type Option func(*T)

// Logger sets the logger used for diagnostics.
func Logger(l *log.Logger) Option {
	return func(e *T) {
		e.logger = l
	}
}

// Prelude controls whether the prelude is loaded. It is loaded by default.
func Prelude(on bool) Option {
	return func(e *T) {
		e.prelude = on
	}
}

// Protect controls whether builtin names can be redefined. By default
// they cannot.
func Protect(on bool) Option {
	return func(e *T) {
		e.protect = on
	}
}

// Stdout sets the writer used by print, println and load.
func Stdout(w io.Writer) Option {
	return func(e *T) {
		e.stdout = w
	}
}

// New creates a new T with every builtin defined in its global scope.
func New(opts ...Option) (*T, error) {
	e := &T{
		logger:  log.StandardLogger(),
		prelude: true,
		protect: true,
		stdout:  os.Stdout,
	}

	for _, o := range opts {
		o(e)
	}

	e.scope = env.Global(e.logger)

	commands.Register(e.scope, e, e.protect)

	if e.prelude {
		forms, err := reader.ReadString(boot.Name, boot.Script())
		if err != nil {
			return nil, fmt.Errorf("parsing prelude: %w", err)
		}

		e.logger.WithFields(log.Fields{
			"file":  boot.Name,
			"forms": forms.Len(),
		}).Debug("loading prelude")

		commands.Run(e, e.scope, forms)
	}

	return e, nil
}

// Define binds the name k to the value c in the global scope.
func (e *T) Define(k string, c cell.I) error {
	return e.scope.DefineGlobal(k, c)
}

// Evaluate parses text as a single S-expression and evaluates it in the
// global scope. The name is used to label parse errors.
func (e *T) Evaluate(name, text string) (cell.I, error) {
	l, err := reader.ReadString(name, text)
	if err != nil {
		return nil, err
	}

	return eval.Eval(e.scope, l), nil
}

// Execute evaluates each top-level form in text. Errors are displayed
// and evaluation continues.
func (e *T) Execute(name, text string) error {
	forms, err := reader.ReadString(name, text)
	if err != nil {
		return err
	}

	e.run(name, forms)

	return nil
}

// Load evaluates each top-level form in the file at path.
func (e *T) Load(path string) error {
	forms, err := reader.ReadFile(path)
	if err != nil {
		return err
	}

	e.run(path, forms)

	return nil
}

// Logger returns the engine's logger.
func (e *T) Logger() *log.Logger {
	return e.logger
}

// Render returns the display representation of c.
func (e *T) Render(c cell.I) string {
	return printer.Display(e.scope, c)
}

// Scope returns the engine's global scope.
func (e *T) Scope() scope.I {
	return e.scope
}

// Stdout returns the writer used for output.
func (e *T) Stdout() io.Writer {
	return e.stdout
}

func (e *T) run(name string, forms *list.T) {
	e.logger.WithFields(log.Fields{
		"file":  name,
		"forms": forms.Len(),
	}).Debug("loading")

	commands.Run(e, e.scope, forms)
}
