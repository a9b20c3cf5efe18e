/*
Mlisp is a small Lisp. Expressions are either S-expressions, which are
evaluated, or Q-expressions, which are quoted lists that are left alone
until they are passed to eval:

    + 1 2 (* 3 4)
    def {add-mul} (lambda {x y} {+ x (* x y)})
    (add-mul 10) 50
    map (lambda {x} {* x x}) {1 2 3}
    eval (join {+} {1 2})

Functions created with lambda can be partially applied and can collect
any remaining arguments in a list with '...'.

Mlisp is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/mlisp/internal/common/type/errstr"
	"github.com/michaelmacinnis/mlisp/internal/engine"
	"github.com/michaelmacinnis/mlisp/internal/system/options"
	"github.com/michaelmacinnis/mlisp/internal/ui"
)

func main() {
	options.Parse()

	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func run(stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetLevel(log.WarnLevel)

	if options.Debug() {
		logger.SetLevel(log.DebugLevel)
	}

	e, err := engine.New(
		engine.Logger(logger),
		engine.Prelude(options.Prelude()),
		engine.Protect(options.Protect()),
		engine.Stdout(stdout),
	)
	if err != nil {
		logger.WithError(err).Error("starting")

		return 1
	}

	if c := options.Command(); c != "" {
		v, err := e.Evaluate("-c", c)
		if err != nil {
			logger.WithError(err).Warn("parsing command")

			return 1
		}

		fmt.Fprintln(stdout, e.Render(v))

		if errstr.Is(v) {
			return 1
		}

		return 0
	}

	if scripts := options.Scripts(); len(scripts) > 0 {
		for _, path := range scripts {
			if err := e.Load(path); err != nil {
				logger.WithError(err).Warn("loading script")

				return 1
			}
		}

		return 0
	}

	if options.Interactive() {
		ui.Run(e, options.Version)

		return 0
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		logger.WithError(err).Warn("reading stdin")

		return 1
	}

	if err := e.Execute("<stdin>", string(b)); err != nil {
		logger.WithError(err).Warn("parsing stdin")

		return 1
	}

	return 0
}
