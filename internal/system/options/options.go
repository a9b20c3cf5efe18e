// Released under an MIT license. See LICENSE.

// Package options parses mlisp's command-line arguments.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by -v.
const Version = "mlisp 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	debug       bool
	interactive bool
	prelude     bool
	protect     bool
	scripts     []string
	usage       = `mlisp

Usage:
  mlisp [-d] [--no-prelude] [--unprotected] SCRIPT...
  mlisp [-d] [--no-prelude] [--unprotected] -c COMMAND
  mlisp [-d] [--no-prelude] [--unprotected] [-i]
  mlisp -h | --help
  mlisp -v | --version

Arguments:
  SCRIPT  Path to an mlisp script. Each script is loaded in order.

Options:
  -c, --command=COMMAND  Evaluate the specified command.
  -d, --debug            Log diagnostics to stderr.
  -i, --interactive      Invert interactive mode.
  --no-prelude           Do not load the prelude.
  --unprotected          Allow builtins to be redefined.
  -h, --help             Display this help.
  -v, --version          Print mlisp version.

If mlisp's stdin is a TTY, and mlisp was invoked with no script or command,
it starts an interactive session. Otherwise, commands are read from stdin.
`
)

// Command returns the command passed with -c, if any.
func Command() string {
	return command
}

// Debug returns true if diagnostics should be logged.
func Debug() bool {
	return debug
}

// Interactive returns true if an interactive session should be started.
func Interactive() bool {
	return interactive
}

// Parse parses the command-line arguments to the current process.
func Parse() {
	ParseArgs(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
}

// ParseArgs parses argv. The value of terminal indicates whether stdin
// is a TTY.
func ParseArgs(argv []string, terminal bool) {
	if argv == nil {
		argv = []string{}
	}

	opts, err := docopt.ParseArgs(usage, argv, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	debug, _ = opts.Bool("--debug")
	scripts, _ = opts["SCRIPT"].([]string)

	noPrelude, _ := opts.Bool("--no-prelude")
	prelude = !noPrelude

	unprotected, _ := opts.Bool("--unprotected")
	protect = !unprotected

	interactive = command == "" && len(scripts) == 0 && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}

// Prelude returns true if the prelude should be loaded.
func Prelude() bool {
	return prelude
}

// Protect returns true if builtins should be protected from redefinition.
func Protect() bool {
	return protect
}

// Scripts returns the paths of the scripts to load.
func Scripts() []string {
	return scripts
}
